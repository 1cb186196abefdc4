package api

import (
	"testing"
)

func TestCodec(t *testing.T) {
	codec := Codec()
	if codec.Name() != "json" {
		t.Fatalf("Expected codec name json, got %s", codec.Name())
	}

	data, err := codec.Marshal(&GetRangeRequest{StartDate: "2026-02-02", EndDate: "2026-02-08"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"startDate":"2026-02-02","endDate":"2026-02-08"}` {
		t.Errorf("Unexpected encoding: %s", data)
	}

	data, err = codec.Marshal(&SessionsResponse{Sessions: []WorkoutSession{}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"sessions":[],"total":0}` {
		t.Errorf("Expected a zero total to be encoded, got %s", data)
	}

	var empty Empty
	if err := codec.Unmarshal(nil, &empty); err != nil {
		t.Errorf("Unmarshal of an empty body failed: %v", err)
	}

	var day PlannedDay
	if err := codec.Unmarshal([]byte(`{"id":"d1","date":"2026-02-02","templateId":null,"slots":[]}`), &day); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if day.ID != "d1" || day.TemplateID != nil || day.Slots == nil {
		t.Errorf("Unexpected day: %+v", day)
	}

	if err := codec.Unmarshal([]byte(`{"id":`), &day); err == nil {
		t.Error("Expected an error for truncated JSON")
	}
}
