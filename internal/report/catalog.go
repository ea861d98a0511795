package report

// Test categories recorded in the CSV Test column.
const (
	TestBuild   = "Build"
	TestRebuild = "Rebuild"
	TestStartup = "Startup"
	TestIdle    = "Idle"
	TestLoad    = "Load"
)

// Column is one table column: a label and the cell it reads.
type Column struct {
	Label  string
	Test   string
	Metric string
}

// Section is a titled table with a fixed column set.
type Section struct {
	Icon    string
	Title   string
	Columns []Column
}

// Metric is one entry of the baseline comparison.
type Metric struct {
	Test   string
	Metric string
	Label  string
}

// IconSet holds the cosmetic markers used in console and Markdown output.
type IconSet struct {
	Improvement string
	Regression  string
	Neutral     string
	Comparison  string
	Success     string
	Failure     string
}

// Icons is the active icon set.
var Icons = IconSet{
	Improvement: "🟢",
	Regression:  "🔴",
	Neutral:     "⚪",
	Comparison:  "📊",
	Success:     "✅",
	Failure:     "❌",
}

// ConsoleSections are printed by PrintSummary.
var ConsoleSections = []Section{
	{
		Icon:  "📦",
		Title: "BUILD TIME & SIZE",
		Columns: []Column{
			{"Initial (s)", TestBuild, "BuildTime_s"},
			{"Rebuild (s)", TestRebuild, "BuildTime_s"},
			{"Size (MB)", TestBuild, "ImageSize_MB"},
		},
	},
	{
		Icon:  "⚡",
		Title: "BUILD ENERGY",
		Columns: []Column{
			{"Initial (J)", TestBuild, "BuildEnergy_J"},
			{"Rebuild (J)", TestRebuild, "BuildEnergy_J"},
		},
	},
	{
		Icon:  "🚀",
		Title: "STARTUP",
		Columns: []Column{
			{"Time (s)", TestStartup, "StartupTime_s"},
			{"Energy (J)", TestStartup, "StartupEnergy_J"},
		},
	},
	{
		Icon:  "💤",
		Title: "IDLE (30s)",
		Columns: []Column{
			{"Energy (J)", TestIdle, "IdleEnergy_J"},
			{"CPU %", TestIdle, "CPUAvg_%"},
			{"RAM (MB)", TestIdle, "MemoryAvg_MB"},
		},
	},
	{
		Icon:  "🔥",
		Title: "LOAD TEST (60s)",
		Columns: []Column{
			{"Energy (J)", TestLoad, "LoadAvgEnergy_J"},
			{"CPU Avg %", TestLoad, "CPUAvg_%"},
			{"RAM Avg (MB)", TestLoad, "MemoryAvg_MB"},
			{"RAM Peak (MB)", TestLoad, "MemoryPeak_MB"},
		},
	},
}

// MarkdownSections are written by RenderMarkdown.
var MarkdownSections = []Section{
	{
		Title: "Build Performance",
		Columns: []Column{
			{"Initial Build (s)", TestBuild, "BuildTime_s"},
			{"Rebuild (s)", TestRebuild, "BuildTime_s"},
			{"Size (MB)", TestBuild, "ImageSize_MB"},
			{"Initial Energy (J)", TestBuild, "BuildEnergy_J"},
			{"Rebuild Energy (J)", TestRebuild, "BuildEnergy_J"},
		},
	},
	{
		Title: "Startup Performance",
		Columns: []Column{
			{"Time (s)", TestStartup, "StartupTime_s"},
			{"Energy (J)", TestStartup, "StartupEnergy_J"},
		},
	},
	{
		Title: "Idle Performance",
		Columns: []Column{
			{"Energy (J)", TestIdle, "IdleEnergy_J"},
			{"CPU (%)", TestIdle, "CPUAvg_%"},
			{"Memory (MB)", TestIdle, "MemoryAvg_MB"},
		},
	},
	{
		Title: "Load Test Performance",
		Columns: []Column{
			{"Energy (J)", TestLoad, "LoadAvgEnergy_J"},
			{"CPU Avg (%)", TestLoad, "CPUAvg_%"},
			{"Memory Avg (MB)", TestLoad, "MemoryAvg_MB"},
			{"Memory Peak (MB)", TestLoad, "MemoryPeak_MB"},
		},
	},
}

// ComparedMetrics are the entries of the baseline comparison, in print order.
var ComparedMetrics = []Metric{
	{TestBuild, "BuildTime_s", "Initial Build Time"},
	{TestRebuild, "BuildTime_s", "Rebuild Time"},
	{TestBuild, "ImageSize_MB", "Image Size"},
	{TestBuild, "BuildEnergy_J", "Initial Build Energy"},
	{TestStartup, "StartupTime_s", "Startup Time"},
	{TestStartup, "StartupEnergy_J", "Startup Energy"},
	{TestIdle, "IdleEnergy_J", "Idle Energy"},
	{TestIdle, "MemoryAvg_MB", "Idle Memory"},
	{TestLoad, "LoadAvgEnergy_J", "Load Energy"},
	{TestLoad, "MemoryAvg_MB", "Load Memory"},
}
