// Package logparse extracts the summary figures printed at the end of the
// CPU burner and power sampler reports.
//
// Both tools print a variable-length preamble followed by a fixed summary, and
// end with a newline. The summary is therefore addressed from the end of the
// text: the burner prints the elapsed time on line -3 and the cycle count on
// line -2, the sampler prints time and per-rail energy on line -3.
package logparse

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
)

var (
	burnCyclesRegex = regexp.MustCompile(`^Total: (\d+) cycles(?:, ([0-9.]+) Kcycles/s)?`)
	burnTimeRegex   = regexp.MustCompile(`^Total time passed: ([0-9.]+) s`)

	powerTimeRegex   = regexp.MustCompile(`^Total time: ([0-9.]+) `)
	powerSOCRegex    = regexp.MustCompile(`SOC: ([0-9.]+) J \(([0-9.]+) W\)`)
	powerCA57Regex   = regexp.MustCompile(`CA57: ([0-9.]+) J \(([0-9.]+) W\)`)
	powerEnergyRegex = regexp.MustCompile(`^Total energy: ([0-9.]+) J mean power: ([0-9.]+) W`)
)

const (
	burnTimeLine   = 3
	burnCyclesLine = 2
	powerLine      = 3
	powerTotalLine = 2
)

// ParseBurn parses a CPU burner report.
func ParseBurn(text string) (BurnSample, error) {
	lines := SplitLines(text)

	cyclesLine, err := lines.FromEnd(burnCyclesLine)
	if err != nil {
		return BurnSample{}, err
	}
	m, err := match(burnCyclesRegex, "cycles", burnCyclesLine, cyclesLine)
	if err != nil {
		return BurnSample{}, err
	}
	cycles, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return BurnSample{}, badNumber("cycles", burnCyclesLine, cyclesLine, err)
	}
	if cycles == 0 {
		return BurnSample{}, &ParseError{Line: burnCyclesLine, Pattern: "cycles", Text: cyclesLine, Err: ErrZeroCycles}
	}
	// throughput is informational; anything after the count is ignored when it does not parse.
	var kcps float64
	if m[2] != "" {
		if v, perr := strconv.ParseFloat(m[2], 64); perr == nil {
			kcps = v
		}
	}

	timeLine, err := lines.FromEnd(burnTimeLine)
	if err != nil {
		return BurnSample{}, err
	}
	m, err = match(burnTimeRegex, "time passed", burnTimeLine, timeLine)
	if err != nil {
		return BurnSample{}, err
	}
	elapsed, err := parseFloat("time passed", burnTimeLine, timeLine, m[1])
	if err != nil {
		return BurnSample{}, err
	}

	return BurnSample{TotalTime: elapsed, Cycles: cycles, KcyclesPerSec: kcps}, nil
}

// ParsePower parses a power sampler report. The time, SOC and CA57 patterns
// must all match the same summary line.
func ParsePower(text string) (PowerSample, error) {
	lines := SplitLines(text)

	line, err := lines.FromEnd(powerLine)
	if err != nil {
		return PowerSample{}, err
	}

	var s PowerSample
	fields := []struct {
		re      *regexp.Regexp
		pattern string
		dst     []*float64
	}{
		{powerTimeRegex, "total time", []*float64{&s.TotalTime}},
		{powerSOCRegex, "SOC", []*float64{&s.SOCEnergy, &s.SOCPower}},
		{powerCA57Regex, "CA57", []*float64{&s.CA57Energy, &s.CA57Power}},
	}
	for _, f := range fields {
		m, err := match(f.re, f.pattern, powerLine, line)
		if err != nil {
			return PowerSample{}, err
		}
		for i, dst := range f.dst {
			if *dst, err = parseFloat(f.pattern, powerLine, line, m[i+1]); err != nil {
				return PowerSample{}, err
			}
		}
	}

	// The energy total line is informational; older captures may lack it.
	if total, err := lines.FromEnd(powerTotalLine); err == nil {
		if m := powerEnergyRegex.FindStringSubmatch(total); m != nil {
			e, errE := strconv.ParseFloat(m[1], 64)
			p, errP := strconv.ParseFloat(m[2], 64)
			if errE == nil && errP == nil {
				s.TotalEnergy, s.MeanPower = e, p
			}
		}
	}

	return s, nil
}

// ParseBurnReader reads r to EOF and parses it with ParseBurn.
func ParseBurnReader(r io.Reader) (BurnSample, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return BurnSample{}, fmt.Errorf("read burn report: %w", err)
	}
	return ParseBurn(string(b))
}

// ParsePowerReader reads r to EOF and parses it with ParsePower.
func ParsePowerReader(r io.Reader) (PowerSample, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return PowerSample{}, fmt.Errorf("read power report: %w", err)
	}
	return ParsePower(string(b))
}

func match(re *regexp.Regexp, pattern string, offset int, line string) ([]string, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, &ParseError{Line: offset, Pattern: pattern, Text: line, Err: ErrNoMatch}
	}
	return m, nil
}

func parseFloat(pattern string, offset int, line, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, badNumber(pattern, offset, line, err)
	}
	return v, nil
}

func badNumber(pattern string, offset int, line string, err error) error {
	return &ParseError{
		Line:    offset,
		Pattern: pattern,
		Text:    line,
		Err:     fmt.Errorf("%w: %v", ErrBadNumber, err),
	}
}
