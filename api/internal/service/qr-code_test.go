package service

import "testing"

func TestQrCodesNew(t *testing.T) {
	s := NewQrCodesService()

	qr, err := s.New("payhub:wallet:wal-1:25")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if qr == "" {
		t.Fatal("empty qr code")
	}
}

func TestQrCodesFindOrNewCaches(t *testing.T) {
	s := NewQrCodesService()

	first, err := s.FindOrNew("payhub:wallet:wal-2:10")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.FindOrNew("payhub:wallet:wal-2:10")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("cached qr code must be returned as-is")
	}
}
