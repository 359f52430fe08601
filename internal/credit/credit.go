// Package credit はセッション内の課金キー単位のクレジット台帳を提供する。
package credit

// Entry は1課金キー分のクレジット状態を保持する。
// 使用量は報告が成功（ack）するまでPendingTx/PendingRxに累積され、
// 報告の失敗では減算されない。これにより再送時の報告値は単調増加となる。
type Entry struct {
	// ChargingKey はこのエントリの課金キー
	ChargingKey uint32

	// GrantedTotal は累計付与クォータ（バイト）
	GrantedTotal uint64

	// UsedTotal は累計消費バイト数（tx+rx）
	UsedTotal uint64

	// PendingTx / PendingRx は未ack使用量
	PendingTx uint64
	PendingRx uint64

	// ReportingTx / ReportingRx は送信中の報告スナップショット
	ReportingTx uint64
	ReportingRx uint64

	// Reporting は報告が送信中（未ack）であることを示す
	Reporting bool

	// Final は最終報告が送信済みであることを示す。以後の報告対象から外れる。
	Final bool
}

// NewEntry は付与クォータを指定してエントリを生成する
func NewEntry(chargingKey uint32, granted uint64) *Entry {
	return &Entry{
		ChargingKey:  chargingKey,
		GrantedTotal: granted,
	}
}

// AddUsage は使用量を加算する
func (e *Entry) AddUsage(tx, rx uint64) {
	e.PendingTx += tx
	e.PendingRx += rx
	e.UsedTotal += tx + rx
}

// Exhausted は付与クォータを使い切ったかどうかを返す
func (e *Entry) Exhausted() bool {
	return e.UsedTotal >= e.GrantedTotal
}

// OverThreshold は未ack使用量が報告閾値を超えたかどうかを返す
func (e *Entry) OverThreshold(threshold float64) bool {
	if e.GrantedTotal == 0 {
		return e.PendingTx+e.PendingRx > 0
	}
	return float64(e.PendingTx+e.PendingRx) >= threshold*float64(e.GrantedTotal)
}

// NeedsReport は通常の使用量報告が必要かどうかを返す
func (e *Entry) NeedsReport(threshold float64) bool {
	return !e.Final && !e.Reporting && (e.Exhausted() || e.OverThreshold(threshold))
}

// HasPending は未ack使用量が存在するかどうかを返す
func (e *Entry) HasPending() bool {
	return e.PendingTx > 0 || e.PendingRx > 0
}

// BeginReport は未ack使用量のスナップショットを取り、報告中状態に遷移する。
// 戻り値は報告すべき(tx, rx)。Pendingは減算しない。
func (e *Entry) BeginReport() (tx, rx uint64) {
	e.ReportingTx = e.PendingTx
	e.ReportingRx = e.PendingRx
	e.Reporting = true
	return e.ReportingTx, e.ReportingRx
}

// CommitReport は報告成功を反映する。
// スナップショット分をPendingから減算し、追加付与クォータを加算する。
func (e *Entry) CommitReport(grantedDelta uint64) {
	e.PendingTx -= e.ReportingTx
	e.PendingRx -= e.ReportingRx
	e.ReportingTx = 0
	e.ReportingRx = 0
	e.Reporting = false
	e.GrantedTotal += grantedDelta
}

// RollbackReport は報告失敗を反映する。
// Pendingは変更せず報告中状態のみ解除する。次回報告には
// 失敗分と新規使用量の合計が含まれる。
func (e *Entry) RollbackReport() {
	e.ReportingTx = 0
	e.ReportingRx = 0
	e.Reporting = false
}

// MarkFinal は最終報告済みとしてマークする
func (e *Entry) MarkFinal() {
	e.Final = true
}
