package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "customers.json")
	err := os.WriteFile(path, []byte(content), 0o600)
	assert.NoError(t, err)

	return path
}

func TestFileSource_LoadCustomers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		wantLen int
	}{
		{
			name: "Arquivo válido com pedidos aninhados",
			content: `[
				{
					"id": 1,
					"name": "Maria Souza",
					"email": "maria@example.com",
					"totalOrders": 2,
					"totalSpends": 150.5,
					"commissionEarned": 15.05,
					"orders": [
						{"id": "ORD-001", "date": "2024-01-15", "items": 2, "amount": 100.5, "commission": 10.05},
						{"id": "ORD-002", "date": "2024-03-20", "items": 1, "amount": 50.0, "commission": 5.0}
					]
				},
				{"id": 2, "name": "João Lima", "email": "joao@example.com", "graph": [0,0,0,0,0,0,0,0,0,0,0,0]}
			]`,
			wantLen: 2,
		},
		{
			name:    "Coleção vazia é válida",
			content: `[]`,
			wantLen: 0,
		},
		{
			name:    "JSON malformado falha",
			content: `{"id": 1`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewFileSource(writeTempFile(t, tt.content))

			customers, err := source.LoadCustomers()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, customers, tt.wantLen)
		})
	}
}

func TestFileSource_LoadCustomers_DecodesFields(t *testing.T) {
	source := NewFileSource(writeTempFile(t, `[
		{
			"id": 7,
			"name": "Ana Pereira",
			"email": "ana@example.com",
			"gender": "F",
			"totalOrders": 1,
			"canceled": 0,
			"returned": 0,
			"totalSpends": 99.9,
			"commissionEarned": 9.99,
			"orders": [{"id": "ORD-010", "date": "2024-05-02", "items": 3, "amount": 99.9, "commission": 9.99}]
		}
	]`))

	customers, err := source.LoadCustomers()

	assert.NoError(t, err)
	assert.Len(t, customers, 1)
	assert.Equal(t, 7, customers[0].ID)
	assert.Equal(t, "Ana Pereira", customers[0].Name)
	assert.Equal(t, 99.9, customers[0].TotalSpends)
	assert.Len(t, customers[0].Orders, 1)
	assert.Equal(t, "ORD-010", customers[0].Orders[0].ID)
	assert.Equal(t, "2024-05-02", customers[0].Orders[0].Date)
}

func TestFileSource_LoadCustomers_MissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "inexistente.json"))

	customers, err := source.LoadCustomers()

	assert.Nil(t, customers)
	assert.Error(t, err)
}
