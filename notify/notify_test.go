package notify

import "testing"

func TestToast(t *testing.T) {
	if !(Toast{}).Zero() {
		t.Error("empty toast should be zero")
	}

	d := Destructive("Transfer rejected", "missing required fields")
	if d.Severity != SeverityDestructive || d.Zero() {
		t.Errorf("unexpected destructive toast: %+v", d)
	}

	n := New("Transfer sent", "Sent 10 USDT via EVM.")
	if n.Severity != SeverityDefault || n.Zero() {
		t.Errorf("unexpected default toast: %+v", n)
	}
}
