package cmd

import (
	"github.com/alexiusacademia/goxsec/internal/fit"
	"github.com/alexiusacademia/goxsec/internal/geom"
	"github.com/alexiusacademia/goxsec/internal/section"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r3"
)

// canvasValue is a WIDTHxHEIGHT flag.
type canvasValue struct {
	c *fit.Canvas
}

var _ pflag.Value = canvasValue{}

func (v canvasValue) String() string {
	if v.c == nil {
		return ""
	}
	return v.c.String()
}

func (v canvasValue) Set(s string) error {
	c, err := fit.ParseCanvas(s)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

func (canvasValue) Type() string { return "WxH" }

// axisValue is an x|y|z flag. With a non-nil set it remembers whether the
// flag was given and shows no default until then.
type axisValue struct {
	axis *geom.ViewAxis
	set  *bool
}

var _ pflag.Value = axisValue{}

func (v axisValue) String() string {
	if v.axis == nil || (v.set != nil && !*v.set) {
		return ""
	}
	return v.axis.String()
}

func (v axisValue) Set(s string) error {
	a, err := geom.ParseAxis(s)
	if err != nil {
		return err
	}
	*v.axis = a
	if v.set != nil {
		*v.set = true
	}
	return nil
}

func (axisValue) Type() string { return "axis" }

// directionValue is a signed axis flag such as "z" or "-x".
type directionValue struct {
	dir  *r3.Vec
	text *string
}

var _ pflag.Value = directionValue{}

func (v directionValue) String() string {
	if v.text == nil {
		return ""
	}
	return *v.text
}

func (v directionValue) Set(s string) error {
	d, err := geom.ParseDirection(s)
	if err != nil {
		return err
	}
	*v.dir = d
	*v.text = s
	return nil
}

func (directionValue) Type() string { return "direction" }

// policyValue is a first|facing flag.
type policyValue struct {
	p *section.Policy
}

var _ pflag.Value = policyValue{}

func (v policyValue) String() string {
	if v.p == nil {
		return ""
	}
	return v.p.String()
}

func (v policyValue) Set(s string) error {
	p, err := section.ParsePolicy(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

func (policyValue) Type() string { return "policy" }
