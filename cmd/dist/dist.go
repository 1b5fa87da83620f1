// dist reads newline-separated numbers from stdin and describes their
// distribution: moments, quantiles with confidence intervals, and a
// kernel density estimate.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/statlib/go-statlib/stats"
)

func main() {
	s := readInput(os.Stdin)
	s.Sort()

	if len(s.Xs) == 0 {
		fmt.Fprintln(os.Stderr, "no input")
		os.Exit(1)
	}

	mean, err := s.Mean()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), mean)
	if gmean, err := s.GeoMean(); err == nil {
		fmt.Printf("  gmean %.6g", gmean)
	}
	if stdDev, err := s.StdDev(); err == nil {
		variance, _ := s.Variance()
		fmt.Printf("  std dev %.6g  variance %.6g", stdDev, variance)
	}
	fmt.Println()
	fmt.Println()

	// Quartiles and tails, with 95% confidence intervals where the
	// sample supports them.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		x, err := s.Quantile(float64(p) / 100)
		if err != nil {
			continue
		}
		fmt.Printf("%8s %.6g", label, x)
		if p > 0 && p < 100 {
			if ci, err := stats.QuantileCI(len(s.Xs), float64(p)/100, 0.95); err == nil {
				lo, hi, err := ci.FromSample(s)
				if err == nil {
					fmt.Printf("  CI95 [%.6g, %.6g]", lo, hi)
				}
			}
		}
		fmt.Println()
	}
	fmt.Println()

	// Kernel density estimate.
	kde, err := stats.KDE{}.From(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fprintPDF(os.Stdout, kde)
}

// fprintPDF plots the PDF of dist as a horizontal bar chart over the
// distribution's bounds.
func fprintPDF(w io.Writer, dist stats.Dist) {
	const rows, width = 20, 50

	low, high := dist.Bounds()
	xs := make([]float64, rows)
	for i := range xs {
		xs[i] = low + (high-low)*float64(i)/float64(rows-1)
	}
	ys := dist.PDFEach(xs)
	max := 0.0
	for _, y := range ys {
		if y > max {
			max = y
		}
	}
	if max == 0 {
		return
	}
	for i, x := range xs {
		n := int(ys[i] / max * width)
		fmt.Fprintf(w, "%10.4g %s\n", x, strings.Repeat("*", n))
	}
}

func readInput(r io.Reader) (sample stats.Sample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
