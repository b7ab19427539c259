package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"aocenv"
)

func runSync(ctx context.Context, log *aocenv.Logger, out io.Writer) error {
	env, err := openEnv(log)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, styleWarn.Render("Starting sync with the Advent of Code website..."))
	if err := env.Sync(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, styleOK.Render("\n✅ Sync complete!"))
	return nil
}

func runStats(log *aocenv.Logger, out io.Writer) error {
	env, err := openEnv(log)
	if err != nil {
		return err
	}
	stars, err := env.AllStars()
	if err != nil {
		return err
	}
	if len(stars) == 0 {
		fmt.Fprintln(out, styleWarn.Render("No progress data found. Run 'aoc sync' first."))
		return nil
	}

	years := make([]int, 0, len(stars))
	for year := range stars {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	tw := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	fmt.Fprint(tw, styleBold.Render("Day"))
	for _, year := range years {
		fmt.Fprintf(tw, "\t%s", styleBold.Render(fmt.Sprintf("%d", year)))
	}
	fmt.Fprintln(tw)

	for day := 1; day <= 25; day++ {
		fmt.Fprintf(tw, "%d", day)
		for _, year := range years {
			switch stars[year][day] {
			case 2:
				fmt.Fprintf(tw, "\t%s", styleGold.Render("★★"))
			case 1:
				fmt.Fprintf(tw, "\t%s", styleDim.Render("★"))
			default:
				fmt.Fprint(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func runList(log *aocenv.Logger, out io.Writer) error {
	env, err := openEnv(log)
	if err != nil {
		return err
	}
	refs, err := env.ListSolutions()
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		fmt.Fprintln(out, "No solutions have been saved yet.")
		return nil
	}
	fmt.Fprintln(out, styleBold.Render("--- Archived Solutions ---"))
	lastYear := 0
	for _, ref := range refs {
		if ref.Year != lastYear {
			fmt.Fprintln(out, styleGold.Render(fmt.Sprintf("\nYear %d", ref.Year)))
			lastYear = ref.Year
		}
		fmt.Fprintf(out, "  Day %02d, Part %d\n", ref.Day, ref.Part)
	}
	return nil
}
