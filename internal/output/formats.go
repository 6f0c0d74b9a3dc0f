package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the available result export formats
type Format string

const (
	// FormatJSON exports results as indented JSON
	FormatJSON Format = "json"
	// FormatYAML exports results as YAML
	FormatYAML Format = "yaml"
	// FormatJUnit exports results as JUnit XML (for CI/CD integration)
	FormatJUnit Format = "junit"
)

// ParseFormat parses a format name. An empty name selects JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJUnit:
		return FormatJUnit, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// Run is one benchmark run in exportable form.
type Run struct {
	ID    string `json:"run" yaml:"run"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Cases []Case `json:"results" yaml:"results"`
}

// Case is one measured target. Metrics that do not apply are nil and
// encode as null.
type Case struct {
	Name        string   `json:"target,omitempty" yaml:"target,omitempty"`
	Mode        string   `json:"mode" yaml:"mode"`
	Repetitions int      `json:"repetitions" yaml:"repetitions"`
	Memory      *float64 `json:"memory" yaml:"memory"`
	Duration    *float64 `json:"duration" yaml:"duration"`
	Cost        *float64 `json:"cost" yaml:"cost"`
	Count       *float64 `json:"count" yaml:"count"`
	Properties  *float64 `json:"properties" yaml:"properties"`
	Methods     *float64 `json:"methods" yaml:"methods"`
}

// FormatRun renders a run in the given format.
func FormatRun(format Format, run Run) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal results: %w", err)
		}
		return string(data), nil

	case FormatYAML:
		data, err := yaml.Marshal(run)
		if err != nil {
			return "", fmt.Errorf("failed to marshal results: %w", err)
		}
		return string(data), nil

	case FormatJUnit:
		return formatJUnit(run), nil

	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// JUnitTestSuites represents the root element containing all test suites
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite groups the targets of one benchmark run
type JUnitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Time      float64         `xml:"time,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase represents one measured target
type JUnitTestCase struct {
	Name       string           `xml:"name,attr"`
	Classname  string           `xml:"classname,attr"`
	Time       float64          `xml:"time,attr"`
	Properties *JUnitProperties `xml:"properties,omitempty"`
}

// JUnitProperties carries the metrics the time attribute cannot express
type JUnitProperties struct {
	Properties []JUnitProperty `xml:"property"`
}

// JUnitProperty is a single named metric value
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// formatJUnit renders a run as JUnit XML so CI systems can track
// per-target timings the way they track test durations.
func formatJUnit(run Run) string {
	suiteName := run.Label
	if suiteName == "" {
		suiteName = "heft"
	}

	suite := JUnitTestSuite{
		Name:      suiteName,
		Tests:     len(run.Cases),
		TestCases: []JUnitTestCase{},
	}

	for _, c := range run.Cases {
		name := c.Name
		if name == "" {
			name = c.Mode
		}

		testCase := JUnitTestCase{
			Name:       name,
			Classname:  suiteName,
			Time:       seconds(c.Duration),
			Properties: caseProperties(c),
		}
		suite.Time += testCase.Time
		suite.TestCases = append(suite.TestCases, testCase)
	}

	suites := JUnitTestSuites{TestSuites: []JUnitTestSuite{suite}}
	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return xml.Header + fmt.Sprintf("<!-- failed to marshal results: %s -->", err)
	}
	return xml.Header + string(data)
}

// seconds converts a millisecond metric to the seconds JUnit expects.
func seconds(ms *float64) float64 {
	if ms == nil {
		return 0
	}
	return *ms / 1000
}

// caseProperties exposes the non-time metrics as JUnit properties,
// skipping the ones that do not apply to the target.
func caseProperties(c Case) *JUnitProperties {
	props := &JUnitProperties{}
	add := func(name string, v *float64) {
		if v == nil {
			return
		}
		props.Properties = append(props.Properties, JUnitProperty{
			Name:  name,
			Value: strconv.FormatFloat(*v, 'f', -1, 64),
		})
	}

	add("memory", c.Memory)
	add("cost", c.Cost)
	add("count", c.Count)
	add("properties", c.Properties)
	add("methods", c.Methods)

	if len(props.Properties) == 0 {
		return nil
	}
	return props
}
