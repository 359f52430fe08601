package credit

import "testing"

func TestAddUsage(t *testing.T) {
	e := NewEntry(1, 1024)
	e.AddUsage(512, 256)

	if e.PendingTx != 512 {
		t.Errorf("PendingTx = %d, want 512", e.PendingTx)
	}
	if e.PendingRx != 256 {
		t.Errorf("PendingRx = %d, want 256", e.PendingRx)
	}
	if e.UsedTotal != 768 {
		t.Errorf("UsedTotal = %d, want 768", e.UsedTotal)
	}
}

func TestExhausted(t *testing.T) {
	e := NewEntry(1, 1024)
	if e.Exhausted() {
		t.Error("new entry should not be exhausted")
	}

	e.AddUsage(512, 511)
	if e.Exhausted() {
		t.Error("1023/1024 should not be exhausted")
	}

	e.AddUsage(0, 1)
	if !e.Exhausted() {
		t.Error("1024/1024 should be exhausted")
	}
}

func TestOverThreshold(t *testing.T) {
	e := NewEntry(1, 1024)

	e.AddUsage(256, 255)
	if e.OverThreshold(0.5) {
		t.Error("511/1024 should not cross 0.5 threshold")
	}

	e.AddUsage(0, 1)
	if !e.OverThreshold(0.5) {
		t.Error("512/1024 should cross 0.5 threshold")
	}
}

func TestNeedsReport(t *testing.T) {
	e := NewEntry(1, 1024)
	e.AddUsage(512, 512)

	if !e.NeedsReport(0.5) {
		t.Error("entry over threshold should need report")
	}

	e.BeginReport()
	if e.NeedsReport(0.5) {
		t.Error("entry with in-flight report should not need another report")
	}

	e.CommitReport(1024)
	if e.NeedsReport(0.5) {
		t.Error("entry after commit should not need report")
	}

	e.MarkFinal()
	e.AddUsage(2048, 2048)
	if e.NeedsReport(0.5) {
		t.Error("final entry should never need report")
	}
}

func TestCommitReport(t *testing.T) {
	e := NewEntry(1, 1024)
	e.AddUsage(512, 512)

	tx, rx := e.BeginReport()
	if tx != 512 || rx != 512 {
		t.Errorf("BeginReport() = (%d, %d), want (512, 512)", tx, rx)
	}

	// ack前に追加使用量が到着するケース
	e.AddUsage(0, 24)

	e.CommitReport(1024)
	if e.PendingTx != 0 || e.PendingRx != 24 {
		t.Errorf("after commit Pending = (%d, %d), want (0, 24)", e.PendingTx, e.PendingRx)
	}
	if e.GrantedTotal != 2048 {
		t.Errorf("GrantedTotal = %d, want 2048", e.GrantedTotal)
	}
	if e.Reporting {
		t.Error("Reporting should be cleared after commit")
	}
}

// 報告失敗後の再送では失敗分＋新規使用量が報告されることを確認する
func TestRollbackRetryMonotone(t *testing.T) {
	e := NewEntry(1, 1024)
	e.AddUsage(512, 1024)

	tx, rx := e.BeginReport()
	if tx != 512 || rx != 1024 {
		t.Errorf("first report = (%d, %d), want (512, 1024)", tx, rx)
	}

	e.RollbackReport()
	if e.Reporting {
		t.Error("Reporting should be cleared after rollback")
	}

	// 失敗中に新規使用量が到着
	e.AddUsage(0, 24)

	tx, rx = e.BeginReport()
	if tx != 512 || rx != 1048 {
		t.Errorf("retry report = (%d, %d), want (512, 1048)", tx, rx)
	}
}

func TestZeroGrantThreshold(t *testing.T) {
	e := NewEntry(1, 0)
	if e.OverThreshold(0.5) {
		t.Error("zero grant with no usage should not report")
	}
	e.AddUsage(1, 0)
	if !e.OverThreshold(0.5) {
		t.Error("zero grant with any usage should report")
	}
}
