package calendar

import "testing"

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9:5", wantErr: true},
		{in: "0930", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}
	for _, tt := range tests {
		got, err := TimeToMinutes(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("TimeToMinutes(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("TimeToMinutes(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateSlotTimes(t *testing.T) {
	if err := ValidateSlotTimes("09:00", "10:00"); err != nil {
		t.Errorf("valid slot rejected: %v", err)
	}
	if err := ValidateSlotTimes("10:00", "10:00"); err == nil {
		t.Error("empty slot accepted")
	}
	if err := ValidateSlotTimes("11:00", "10:00"); err == nil {
		t.Error("reversed slot accepted")
	}
}

func TestStatusAndProgress(t *testing.T) {
	start, end := 540, 600 // 09:00-10:00

	tests := []struct {
		now          int
		wantStatus   SlotStatus
		wantProgress float64
	}{
		{now: 500, wantStatus: SlotUpcoming, wantProgress: 0},
		{now: 540, wantStatus: SlotActive, wantProgress: 0},
		{now: 570, wantStatus: SlotActive, wantProgress: 50},
		{now: 600, wantStatus: SlotPast, wantProgress: 100},
		{now: 700, wantStatus: SlotPast, wantProgress: 100},
	}
	for _, tt := range tests {
		if got := StatusAt(start, end, tt.now); got != tt.wantStatus {
			t.Errorf("StatusAt(now=%d) = %s, want %s", tt.now, got, tt.wantStatus)
		}
		if got := ProgressAt(start, end, tt.now); got != tt.wantProgress {
			t.Errorf("ProgressAt(now=%d) = %v, want %v", tt.now, got, tt.wantProgress)
		}
	}

	if got := ProgressAt(600, 600, 600); got != 0 {
		t.Errorf("zero-length slot progress = %v, want 0", got)
	}
}
