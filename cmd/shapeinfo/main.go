// Command shapeinfo prints pole layouts and resonance frequencies of the
// morphable filter shape pairs.
//
// Usage:
//
//	shapeinfo [flags] [pair-name ...]
//
// Without arguments it prints info for all known shape pairs.
//
// Examples:
//
//	shapeinfo vowel
//	shapeinfo -rate 96000 bell low
//	shapeinfo -morph 0.75 -intensity 1 vowel
//	shapeinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-zplane/dsp/filter/zplane"
)

func main() {
	rate := flag.Float64("rate", 48000, "operating sample rate in Hz")
	morph := flag.Float64("morph", 0.5, "morph position between shape A and B, in [0, 1]")
	intensity := flag.Float64("intensity", 0.4, "resonance intensity, in [0, 1]")
	points := flag.Int("points", 4096, "response grid size for the peak search")
	list := flag.Bool("list", false, "list available pair names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: shapeinfo [flags] [pair-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints pole layouts and resonance frequencies of filter shape pairs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all pairs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  shapeinfo vowel bell\n")
		fmt.Fprintf(os.Stderr, "  shapeinfo -rate 96000 -morph 0.75 low\n")
		fmt.Fprintf(os.Stderr, "  shapeinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	pairs := resolvePairs(flag.Args())
	if len(pairs) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching shape pairs\n")
		os.Exit(1)
	}

	if err := printAnalysis(pairs, *rate, *morph, *intensity, *points); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	pairs := zplane.ShapePairs()
	names := make([]string, len(pairs))
	for i, p := range pairs {
		names[i] = strings.ToLower(p.Name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolvePairs(names []string) []zplane.ShapePair {
	all := zplane.ShapePairs()
	if len(names) == 0 {
		return all
	}

	byName := make(map[string]zplane.ShapePair, len(all))
	for _, p := range all {
		byName[strings.ToLower(p.Name)] = p
	}

	var result []zplane.ShapePair
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "subbass" {
			name = "sub"
		}
		p, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown pair %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, p)
	}
	return result
}

func printAnalysis(pairs []zplane.ShapePair, rate, morph, intensity float64, points int) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Pair\tPole\tR(A)\tFreq(A) [Hz]\tR(B)\tFreq(B) [Hz]\tR(morph)\tFreq(morph) [Hz]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t----\t----\t------------\t----\t------------\t--------\t----------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, pair := range pairs {
		f, err := zplane.New(pair.A, pair.B)
		if err != nil {
			return fmt.Errorf("pair %s: %w", pair.Name, err)
		}
		if err := f.Prepare(rate); err != nil {
			return fmt.Errorf("pair %s: %w", pair.Name, err)
		}

		f.UpdateCoeffs(morph, intensity)
		poles := f.LastPoles()

		for i := 0; i < zplane.NumPoles; i++ {
			if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.1f\t%.4f\t%.1f\t%.4f\t%.1f\n",
				pair.Name,
				i,
				pair.A[i].R,
				pair.A[i].FrequencyHz(zplane.ReferenceRate),
				pair.B[i].R,
				pair.B[i].FrequencyHz(zplane.ReferenceRate),
				poles[i].R,
				poles[i].FrequencyHz(rate),
			); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}

		peak := f.PeakFrequencyHz(points)
		if _, err := fmt.Fprintf(tw, "%s\tpeak\t\t\t\t\t\t%.1f\n", pair.Name, peak); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
