package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	// Test Unix()
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}

	// Test UnixMilli()
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}

	// Test UnixMicro()
	if tt.UnixMicro() != now.UnixMicro() {
		t.Errorf("UnixMicro() = %v, want %v", tt.UnixMicro(), now.UnixMicro())
	}

	// Test UnixNano()
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("UnixNano() = %v, want %v", tt.UnixNano(), now.UnixNano())
	}

	// Verify it's not returning time.Now() by waiting a bit
	// 通过等待一会确认它不是返回 time.Now()
	time.Sleep(10 * time.Millisecond)
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() changed after sleep, it should be static. got %v, want %v", tt.Unix(), now.Unix())
	}
}

func TestTime_MarshalJSON(t *testing.T) {
	tt := Time(time.Date(2024, 1, 1, 12, 30, 45, 0, time.UTC))

	b, err := json.Marshal(tt)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `"2024-01-01 12:30:45"`
	if string(b) != want {
		t.Errorf("MarshalJSON = %s, want %s", b, want)
	}
}

func TestTime_UnmarshalJSON(t *testing.T) {
	var tt Time
	if err := json.Unmarshal([]byte(`"2024-01-01 12:30:45"`), &tt); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	got := time.Time(tt)
	if got.Hour() != 12 || got.Minute() != 30 || got.Second() != 45 {
		t.Errorf("UnmarshalJSON = %v, want 12:30:45", got)
	}

	// null and empty string are ignored
	// null 与空字符串被忽略
	var zero Time
	if err := json.Unmarshal([]byte(`null`), &zero); err != nil {
		t.Errorf("Unmarshal null error: %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("null should keep zero value")
	}
}
