package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
)

// station is a generation source: values are drawn from a normal
// distribution around its annual mean.
type station struct {
	name string
	mean float64
}

var stations = []station{
	{"Abha", 18.0}, {"Accra", 26.4}, {"Almaty", 10.0}, {"Amsterdam", 10.2},
	{"Athens", 19.2}, {"Baghdad", 22.77}, {"Bangkok", 28.6}, {"Bordeaux", 14.2},
	{"Brussels", 10.5}, {"Bulawayo", 18.9}, {"Cairo", 21.4}, {"Cape Town", 16.2},
	{"Chicago", 9.8}, {"Darwin", 27.6}, {"Denver", 10.4}, {"Dhaka", 25.9},
	{"Hamburg", 9.7}, {"Hanoi", 23.6}, {"Helsinki", 5.9}, {"Istanbul", 13.9},
	{"Jakarta", 26.7}, {"Kyiv", 8.4}, {"Lagos", 26.8}, {"Lisbon", 17.5},
	{"Mexico City", 17.5}, {"Moscow", 5.8}, {"Nairobi", 17.8}, {"New Delhi", 25.0},
	{"Oslo", 5.7}, {"Ottawa", 6.6}, {"Palembang", 27.3}, {"Reykjavík", 4.3},
	{"San Francisco", 14.6}, {"São Paulo", 19.2}, {"Seoul", 12.5}, {"Singapore", 26.9},
	{"Tokyo", 15.4}, {"Toronto", 9.4}, {"Wellington", 12.9}, {"Yakutsk", -8.8},
}

// generateFile writes rows lines of "name;value" to path, each value a
// decimal with one fractional digit. Called when the input file is missing;
// the caller is expected to rerun afterwards.
func generateFile(path string, rows int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(f, 4<<20)
	for range rows {
		s := stations[rand.IntN(len(stations))]
		fmt.Fprintf(bw, "%s;%.1f\n", s.name, s.mean+rand.NormFloat64()*10)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
