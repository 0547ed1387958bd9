package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/project12/keuanganbot/internal/ledger"
)

func TestBatchSummary(t *testing.T) {
	tests := []struct {
		name   string
		result ledger.BatchResult
		want   string
	}{
		{
			name:   "all succeeded",
			result: ledger.BatchResult{Added: 3},
			want:   "✅ 3 transaksi berhasil ditambahkan.",
		},
		{
			name: "with errors",
			result: ledger.BatchResult{
				Added: 1,
				Errors: []ledger.LineError{
					{Line: 2, Message: "format harus: deskripsi, kategori_nomor, nominal, saldo_nomor"},
				},
			},
			want: "✅ 1 transaksi berhasil ditambahkan.\n\n⚠️ Error:\nBaris 2: format harus: deskripsi, kategori_nomor, nominal, saldo_nomor",
		},
		{
			name:   "nothing parsed",
			result: ledger.BatchResult{Errors: []ledger.LineError{{Line: 1, Message: "kategori tidak valid: 42"}}},
			want:   "✅ 0 transaksi berhasil ditambahkan.\n\n⚠️ Error:\nBaris 1: kategori tidak valid: 42",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, batchSummary(tc.result))
		})
	}
}
