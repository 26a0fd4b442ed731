package logging

import (
	"strings"
	"testing"

	"github.com/gatelog/gatelog/alloc"
	"github.com/gatelog/gatelog/core"
	"github.com/gatelog/gatelog/directive"
)

// resetGlobal gives each test a fresh process-wide context with a
// recording handler installed.
func resetGlobal(t *testing.T) *recorder {
	t.Helper()
	Shutdown()
	t.Cleanup(Shutdown)
	rec := &recorder{}
	SetOutputHandler(rec)
	return rec
}

func TestGlobal_AutoInitialize(t *testing.T) {
	Shutdown()
	t.Cleanup(Shutdown)

	if Initialized() {
		t.Fatal("context must start uninitialized")
	}
	if got := DefaultThreshold(); got != core.Info {
		t.Errorf("default threshold = %v, want Info", got)
	}
	if !Initialized() {
		t.Error("first use must initialize")
	}
}

func TestGlobal_InitializeWithInvalidAllocator(t *testing.T) {
	Shutdown()
	t.Cleanup(Shutdown)

	InitializeWithAllocator(alloc.ZeroInitialized())
	if Initialized() {
		t.Fatal("invalid allocator must leave logging uninitialized")
	}

	// Recovery: the next use autoinitializes with the default allocator.
	if got := DefaultThreshold(); got != core.Info {
		t.Errorf("default threshold after recovery = %v", got)
	}
	if !Initialized() {
		t.Error("autoinitialization after a failed Initialize must succeed")
	}
}

func TestGlobal_ThresholdSurface(t *testing.T) {
	resetGlobal(t)

	SetThreshold("node.sensor", core.Debug)
	if got := Threshold("node.sensor"); got != core.Debug {
		t.Errorf("Threshold = %v", got)
	}
	if got := EffectiveThreshold("node.sensor.imu"); got != core.Debug {
		t.Errorf("EffectiveThreshold = %v", got)
	}
	if !IsEnabledFor("node.sensor.imu", core.Debug) {
		t.Error("descendant must inherit the Debug threshold")
	}
	SetDefaultThreshold(core.Error)
	if IsEnabledFor("unrelated", core.Warn) {
		t.Error("unrelated logger must follow the raised default")
	}
}

func TestGlobal_Log(t *testing.T) {
	rec := resetGlobal(t)

	Log(nil, core.Warn, "node", "count %d", 3)
	if msgs := rec.messages(); len(msgs) != 1 || msgs[0] != "count 3" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestGlobal_LogGated(t *testing.T) {
	rec := resetGlobal(t)
	site := RegisterCallSite()

	for i := 0; i < 4; i++ {
		LogGated(site, directive.FireOnce(), nil, core.Warn, "", "once %d", i)
	}
	if msgs := rec.messages(); len(msgs) != 1 || msgs[0] != "once 0" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestGlobal_LogFunc(t *testing.T) {
	rec := resetGlobal(t)
	SetDefaultThreshold(core.Error)

	built := false
	LogFunc(0, directive.Always(), nil, core.Info, "", func() string {
		built = true
		return "never"
	})
	if built || len(rec.records) != 0 {
		t.Error("builder must not run for a disabled severity")
	}
}

func TestGlobal_LeveledHelpersCaptureLocation(t *testing.T) {
	rec := resetGlobal(t)
	SetDefaultThreshold(core.Debug)

	Infof("hello %s", "world")

	if len(rec.records) != 1 {
		t.Fatalf("emitted %d records, want 1", len(rec.records))
	}
	r := rec.records[0]
	if r.Message != "hello world" || r.Severity != core.Info || r.Name != "" {
		t.Errorf("record = %+v", r)
	}
	if r.Location == nil {
		t.Fatal("leveled helper must capture the caller's location")
	}
	if !strings.Contains(r.Location.Function, "TestGlobal_LeveledHelpersCaptureLocation") {
		t.Errorf("captured function = %q", r.Location.Function)
	}
	if !strings.HasSuffix(r.Location.File, "global_test.go") {
		t.Errorf("captured file = %q", r.Location.File)
	}
}

func TestGlobal_NamedHelpers(t *testing.T) {
	rec := resetGlobal(t)
	SetDefaultThreshold(core.Warn)
	SetThreshold("node.sensor", core.Info)

	InfofNamed("node.sensor", "enabled by explicit threshold")
	InfofNamed("other", "suppressed by default threshold")
	DebugfNamed("node.sensor", "below the explicit threshold")
	WarnfNamed("other", "enabled by default threshold")

	msgs := rec.messages()
	want := []string{"enabled by explicit threshold", "enabled by default threshold"}
	if len(msgs) != len(want) || msgs[0] != want[0] || msgs[1] != want[1] {
		t.Errorf("messages = %v, want %v", msgs, want)
	}
}

func TestGlobal_SeverityHelpers(t *testing.T) {
	rec := resetGlobal(t)
	SetDefaultThreshold(core.Debug)

	Debugf("d")
	Infof("i")
	Warnf("w")
	Errorf("e")
	Fatalf("f")

	if len(rec.records) != 5 {
		t.Fatalf("emitted %d records, want 5", len(rec.records))
	}
	wantSev := []core.Severity{core.Debug, core.Info, core.Warn, core.Error, core.Fatal}
	for i, r := range rec.records {
		if r.Severity != wantSev[i] {
			t.Errorf("record %d severity = %v, want %v", i, r.Severity, wantSev[i])
		}
	}
}

func TestGlobal_ShutdownDropsCallSiteState(t *testing.T) {
	rec := resetGlobal(t)
	site := RegisterCallSite()
	LogGated(site, directive.FireOnce(), nil, core.Warn, "", "first life")

	Shutdown()
	rec2 := &recorder{}
	SetOutputHandler(rec2)
	site2 := RegisterCallSite()
	LogGated(site2, directive.FireOnce(), nil, core.Warn, "", "second life")

	if len(rec.records) != 1 || len(rec2.records) != 1 {
		t.Errorf("records before/after shutdown = %d/%d, want 1/1", len(rec.records), len(rec2.records))
	}
}
