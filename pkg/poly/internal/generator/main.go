package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-vgen")

	cfg, err := tableConfig(xapp052)
	assertNoError(err, "tabulating maximal polynomials")

	assertNoError(bgen.Generate(cfg, "poly", "templates",
		bavard.Entry{
			File:      "../../maximal_table.go",
			Templates: []string{"maximal_table.go.tmpl"},
		},
	), "generating maximal polynomial table")

	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")

	// run goimports on whole directory
	runCmd("goimports", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// polySpecs records the exponents of one maximal-length feedback polynomial,
// as listed in table 3 of Xilinx application note XAPP052.
type polySpecs struct {
	Width     uint
	Exponents []uint
}

// xapp052 tabulates one maximal-length feedback polynomial for every register
// width from 2 up to 32.
var xapp052 = []polySpecs{
	{2, []uint{2, 1}},
	{3, []uint{3, 2}},
	{4, []uint{4, 3}},
	{5, []uint{5, 3}},
	{6, []uint{6, 5}},
	{7, []uint{7, 6}},
	{8, []uint{8, 6, 5, 4}},
	{9, []uint{9, 5}},
	{10, []uint{10, 7}},
	{11, []uint{11, 9}},
	{12, []uint{12, 6, 4, 1}},
	{13, []uint{13, 4, 3, 1}},
	{14, []uint{14, 5, 3, 1}},
	{15, []uint{15, 14}},
	{16, []uint{16, 15, 13, 4}},
	{17, []uint{17, 14}},
	{18, []uint{18, 11}},
	{19, []uint{19, 6, 2, 1}},
	{20, []uint{20, 17}},
	{21, []uint{21, 19}},
	{22, []uint{22, 21}},
	{23, []uint{23, 18}},
	{24, []uint{24, 23, 22, 17}},
	{25, []uint{25, 22}},
	{26, []uint{26, 6, 2, 1}},
	{27, []uint{27, 5, 2, 1}},
	{28, []uint{28, 25}},
	{29, []uint{29, 27}},
	{30, []uint{30, 6, 4, 1}},
	{31, []uint{31, 28}},
	{32, []uint{32, 22, 2, 1}},
}

type tableEntry struct {
	Width   uint
	Literal string
}

type tableData struct {
	Entries []tableEntry
}

// tableConfig converts tabulated exponents into coefficient masks, rendered
// as hexadecimal literals.  A polynomial x^e corresponds with a tap on
// register bit e-1.
func tableConfig(specs []polySpecs) (*tableData, error) {
	data := tableData{
		Entries: make([]tableEntry, len(specs)),
	}

	for i, spec := range specs {
		mask := big.NewInt(0)

		for j, e := range spec.Exponents {
			if e == 0 || e > spec.Width {
				return nil, fmt.Errorf("width %d: exponent %d out of range", spec.Width, e)
			} else if j > 0 && e >= spec.Exponents[j-1] {
				return nil, fmt.Errorf("width %d: exponents not descending", spec.Width)
			}

			mask.SetBit(mask, int(e)-1, 1)
		}

		if spec.Exponents[0] != spec.Width {
			return nil, fmt.Errorf("width %d: leading exponent %d", spec.Width, spec.Exponents[0])
		}

		data.Entries[i] = tableEntry{spec.Width, fmt.Sprintf("0x%x", mask)}
	}

	return &data, nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
