package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Borislavv/go-ash-rand"
	"gopkg.in/yaml.v3"
)

var errNegativeCount = errors.New("count must not be negative")

type DrawCmd struct {
	Count int `short:"n" default:"10" help:"Number of draws"`
}

func (c *DrawCmd) Run(g *Globals) error {
	if c.Count < 0 {
		return errNegativeCount
	}
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for _, v := range gen.Batch(c.Count) {
		fmt.Fprintln(g.writer(), strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil
}

type IntCmd struct {
	Min   int `default:"1" help:"Lower bound (inclusive)"`
	Max   int `default:"6" help:"Upper bound (inclusive)"`
	Count int `short:"n" default:"1" help:"Number of values"`
}

func (c *IntCmd) Run(g *Globals) error {
	if c.Count < 0 {
		return errNegativeCount
	}
	if c.Min > c.Max {
		return fmt.Errorf("min %d is greater than max %d", c.Min, c.Max)
	}
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		fmt.Fprintln(g.writer(), gen.IntRange(c.Min, c.Max))
	}
	return nil
}

type FloatCmd struct {
	Min   float64 `default:"0" help:"Lower bound (inclusive)"`
	Max   float64 `default:"1" help:"Upper bound (exclusive)"`
	Count int     `short:"n" default:"1" help:"Number of values"`
}

func (c *FloatCmd) Run(g *Globals) error {
	if c.Count < 0 {
		return errNegativeCount
	}
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		fmt.Fprintln(g.writer(), strconv.FormatFloat(gen.FloatRange(c.Min, c.Max), 'f', -1, 64))
	}
	return nil
}

type GaussCmd struct {
	Mean   float64 `default:"0" help:"Mean"`
	StdDev float64 `name:"stddev" default:"1" help:"Standard deviation"`
	Count  int     `short:"n" default:"1" help:"Number of samples"`
}

func (c *GaussCmd) Run(g *Globals) error {
	if c.Count < 0 {
		return errNegativeCount
	}
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		fmt.Fprintln(g.writer(), strconv.FormatFloat(gen.Gauss(c.Mean, c.StdDev), 'f', -1, 64))
	}
	return nil
}

type ShuffleCmd struct {
	Items []string `arg:"" help:"Items to shuffle"`
}

func (c *ShuffleCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for _, item := range ashrand.Shuffle(gen, c.Items) {
		fmt.Fprintln(g.writer(), item)
	}
	return nil
}

type PickCmd struct {
	Items []string `arg:"" help:"Items to pick from"`
	Count int      `short:"n" default:"1" help:"Number of picks (with replacement)"`
}

func (c *PickCmd) Run(g *Globals) error {
	if c.Count < 0 {
		return errNegativeCount
	}
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		fmt.Fprintln(g.writer(), ashrand.Item(gen, c.Items))
	}
	return nil
}

type DescribeCmd struct{}

func (c *DescribeCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(gen.Describe())
	if err != nil {
		return fmt.Errorf("marshal descriptor: %w", err)
	}
	_, err = g.writer().Write(data)
	return err
}

type CompareCmd struct{}

func (c *CompareCmd) Run(g *Globals) error {
	_, err := fmt.Fprint(g.writer(), ashrand.Compare())
	return err
}

type SelectCmd struct {
	Priority string `arg:"" help:"speed, quality, period or balanced"`
}

func (c *SelectCmd) Run(g *Globals) error {
	_, err := fmt.Fprintln(g.writer(), ashrand.Select(c.Priority))
	return err
}

type RecommendCmd struct {
	UseCase string `arg:"" name:"use-case" help:"game-shuffle, procedural-generation, monte-carlo, cryptography, testing, physics-simulation"`
}

func (c *RecommendCmd) Run(g *Globals) error {
	a := ashrand.Recommend(c.UseCase)
	if c.UseCase == "cryptography" {
		g.logger.Warn().Msg("none of the generators are cryptographically secure")
	}
	_, err := fmt.Fprintln(g.writer(), a)
	return err
}
