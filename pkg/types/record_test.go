package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordID(t *testing.T) {
	tests := []struct {
		name   string
		rec    Record
		wantID int64
		wantOK bool
	}{
		{name: "decoded JSON number", rec: Record{"id": float64(7)}, wantID: 7, wantOK: true},
		{name: "int64 value", rec: Record{"id": int64(12)}, wantID: 12, wantOK: true},
		{name: "numeric string", rec: Record{"id": "42"}, wantID: 42, wantOK: true},
		{name: "fractional number", rec: Record{"id": 1.5}, wantOK: false},
		{name: "missing id", rec: Record{"name": "x"}, wantOK: false},
		{name: "null id", rec: Record{"id": nil}, wantOK: false},
		{name: "nil record", rec: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.rec.ID()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestRecordCreatorID(t *testing.T) {
	id, ok := Record{"creatorId": float64(3)}.CreatorID()
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)
}

func TestRecordCloneIsIndependent(t *testing.T) {
	orig := Record{"id": float64(1), "name": "a"}
	cp := orig.Clone()
	cp["name"] = "b"

	assert.Equal(t, "a", orig["name"], "mutating the clone must not touch the original")
	assert.Nil(t, Record(nil).Clone())
}
