package dosecurve_test

import (
	"fmt"
	"log"

	"github.com/assaylab/dosecurve"
	"github.com/assaylab/dosecurve/fit"
	"github.com/assaylab/dosecurve/snapshot"
)

// ExampleFitSeries demonstrates fitting a single dose-response series.
func ExampleFitSeries() {
	curve, err := dosecurve.FitSeries(
		[]float64{10000, 3333, 1111, 370, 123, 41, 14},
		[]float64{100, 95, 85, 70, 45, 20, 5},
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("EC50 = %.4g\n", curve.EC50)
	fmt.Printf("R² = %.4f\n", curve.RSquared)

	// Output:
	// EC50 = 170.1
	// R² = 0.9973
}

// ExampleFitTable demonstrates replicate averaging: columns sharing a group
// label produce a group curve followed by the individual column curves.
func ExampleFitTable() {
	names := []string{"A1", "A2"}
	groups := []string{"A", "A"}
	table := fit.Table{
		{Concentration: 1000, Responses: []float64{98, 100}, SampleNames: names, ReplicateGroups: groups},
		{Concentration: 100, Responses: []float64{88, 90}, SampleNames: names, ReplicateGroups: groups},
		{Concentration: 10, Responses: []float64{68, 70}, SampleNames: names, ReplicateGroups: groups},
	}

	curves, err := dosecurve.FitTable(table)
	if err != nil {
		log.Fatal(err)
	}

	for _, curve := range curves {
		fmt.Println(curve.SampleName)
	}

	// Output:
	// A
	// A1
	// A2
}

// ExampleEncodeSnapshot demonstrates the snapshot round trip.
func ExampleEncodeSnapshot() {
	curve, err := dosecurve.FitSeries(
		[]float64{10000, 3333, 1111, 370, 123, 41, 14},
		[]float64{100, 95, 85, 70, 45, 20, 5},
	)
	if err != nil {
		log.Fatal(err)
	}
	curve.SampleName = "Compound A"

	data, err := dosecurve.EncodeSnapshot([]*fit.Curve{curve},
		snapshot.WithCompression(snapshot.CompressionZstd),
	)
	if err != nil {
		log.Fatal(err)
	}

	decoder, err := dosecurve.DecodeSnapshot(data)
	if err != nil {
		log.Fatal(err)
	}

	loaded, ok := decoder.AtName("Compound A")
	fmt.Println(ok)
	fmt.Printf("%s: EC50 = %.4g\n", loaded.SampleName, loaded.EC50)

	// Output:
	// true
	// Compound A: EC50 = 170.1
}
