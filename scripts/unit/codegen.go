package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type unit struct {
	Name     string
	Code     string
	Decimals int
}

func main() {
	data, err := readCsvFile(filepath.Join("scripts", "unit", "unit_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	units, err := convertDataToUnits(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	code, err := generateGoCode(filepath.Join("scripts", "unit", "unit_data.tmpl"), units)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	err = writeToFile("unit_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToUnits sorts records by code, keeping the unknown unit XXX
// first so that it becomes the zero value of the Unit type.
func convertDataToUnits(data [][]string) ([]unit, error) {
	less := func(i, j int) bool {
		a, b := data[i][1], data[j][1]
		switch {
		case a == "XXX":
			return b != "XXX"
		case b == "XXX":
			return false
		}
		return a < b
	}
	sort.Slice(data, less)

	units := make([]unit, 0, len(data))
	seen := make(map[string]bool, len(data))
	for _, rec := range data {
		code := rec[1]
		if seen[code] {
			return nil, fmt.Errorf("duplicate unit code %q", code)
		}
		seen[code] = true
		decimals, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", code, err)
		}
		if decimals < 0 || decimals > 255 {
			return nil, fmt.Errorf("unit %q: decimals %v out of range", code, decimals)
		}
		units = append(units, unit{
			Name:     rec[0],
			Code:     code,
			Decimals: decimals,
		})
	}
	if len(units) > 256 {
		return nil, fmt.Errorf("too many units: %v", len(units))
	}
	return units, nil
}

func generateGoCode(filename string, units []unit) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, units)
	if err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
