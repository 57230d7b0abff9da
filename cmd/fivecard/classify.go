package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/fivecard/poker"
)

var (
	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// ClassifyCmd prints the category and defining rank of each hand.
type ClassifyCmd struct {
	Hands []string `arg:"" help:"Hands in format '8C 8S KC 9H 9S' (quoted)" required:"true"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	w := tabwriter.NewWriter(g.Stdout, 0, 0, 2, ' ', 0)
	for i, text := range c.Hands {
		hand, err := poker.ParseHand(text)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "%s\t%s\n",
			handStyle.Render(hand.String()),
			scoreStyle.Render(poker.Classify(hand).String()))
	}
	return w.Flush()
}

// CompareCmd compares hand A against hand B.
type CompareCmd struct {
	A string `arg:"" name:"hand-a" help:"First hand, e.g. '5H 5C 6S 7S KD'"`
	B string `arg:"" name:"hand-b" help:"Second hand, e.g. '2C 3S 8S 8D TD'"`
}

func (c *CompareCmd) Run(g *Globals) error {
	a, err := poker.ParseHand(c.A)
	if err != nil {
		return fmt.Errorf("hand A: %w", err)
	}
	b, err := poker.ParseHand(c.B)
	if err != nil {
		return fmt.Errorf("hand B: %w", err)
	}

	result, reason := poker.Explain(a, b)
	switch result {
	case poker.Greater:
		_, err = fmt.Fprintf(g.Stdout, "hand A wins: %s\n", reason)
	case poker.Less:
		_, err = fmt.Fprintf(g.Stdout, "hand B wins: %s\n", reason)
	default:
		_, err = fmt.Fprintf(g.Stdout, "draw: %s\n", reason)
	}
	return err
}
