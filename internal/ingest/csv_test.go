package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsift/smsparser/internal/model"
)

func TestReadMessages(t *testing.T) {
	data := `address,date,body
XX-SBIBNK-S,1704430800000,"Rs.1,234.56 debited from A/c XX4321 to AMAZON. Avl Bal Rs.9,876.54"
XX-HDFCBK-S,,OTP is 123456
`
	sources, err := ReadMessages(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, "XX-SBIBNK-S", sources[0].Sender)
	assert.Contains(t, sources[0].Body, "AMAZON")
	assert.Equal(t, int64(1704430800000), sources[0].Timestamp)
	assert.Zero(t, sources[1].Timestamp)
}

func TestReadMessages_ColumnOrderIndependent(t *testing.T) {
	data := "body,address\nhello,SENDER1\n"
	sources, err := ReadMessages(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "SENDER1", sources[0].Sender)
	assert.Equal(t, "hello", sources[0].Body)
}

func TestWriteAnnotated(t *testing.T) {
	p := testProcessor(2)
	sources := []model.Source{
		{Body: "Rs.1,234.56 debited from A/c XX4321 to AMAZON. Avl Bal Rs.9,876.54", Sender: "XX-SBIBNK-S", Timestamp: 1704430800000},
		{Body: "whatever", Sender: "NOBODY"},
	}
	report := p.Run(context.Background(), sources)

	var buf bytes.Buffer
	require.NoError(t, WriteAnnotated(&buf, sources, report.Outcomes))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "address", rows[0][0])
	assert.Equal(t, "XX-SBIBNK-S", rows[1][0])
	assert.Equal(t, "parsed", rows[1][3])
	assert.Equal(t, "1234.56", rows[1][5])
	assert.Equal(t, "EXPENSE", rows[1][6])
	assert.Equal(t, "no_parser", rows[2][3])
	assert.Empty(t, rows[2][5])
}

func TestWriteAnnotated_LengthMismatch(t *testing.T) {
	err := WriteAnnotated(&bytes.Buffer{}, []model.Source{{Body: "x", Sender: "S"}}, nil)
	assert.Error(t, err)
}

func TestReadMessages_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing address column", "body,date\nhello,1\n"},
		{"missing body column", "address,date\nS,1\n"},
		{"bad timestamp", "address,body,date\nS,hello,notanumber\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMessages(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}
