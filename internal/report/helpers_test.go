package report

import (
	"strings"
	"testing"

	"benchreport/internal/results"
)

const testBaseline = "fatjar"

func init() {
	SetColor(false)
}

func mustRead(t *testing.T, csv string) results.ResultSet {
	t.Helper()
	rs, err := results.Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return rs
}

// sectionOf returns the text between the line containing start and the next
// occurrence of end (or the end of output).
func sectionOf(output, start, end string) string {
	i := strings.Index(output, start)
	if i < 0 {
		return ""
	}
	rest := output[i+len(start):]
	if j := strings.Index(rest, end); j >= 0 {
		return rest[:j]
	}
	return rest
}

const fullCSV = `Config,Test,BuildTime_s,ImageSize_MB,BuildEnergy_J,StartupTime_s,StartupEnergy_J,IdleEnergy_J,CPUAvg_%,MemoryAvg_MB,LoadAvgEnergy_J,MemoryPeak_MB
fatjar,Build,10.0,200,500,,,,,,,
fatjar,Rebuild,4.0,,100,,,,,,,
fatjar,Startup,,,,2.5,40,,,,,
fatjar,Idle,,,,,,300,1.5,250,,
fatjar,Load,,,,,,,55,400,1200,520
native,Build,2.0,50,90,,,,,,,
native,Rebuild,1.0,,25,,,,,,,
native,Startup,,,,0.05,1,,,,,
native,Idle,,,,,,120,0.3,40,,
native,Load,,,,,,,60,80,900,110
`
