// Package dataset carrega a coleção inicial de clientes a partir da fonte
// de dados configurada. A carga acontece uma única vez na inicialização;
// mutações nunca são escritas de volta.
package dataset

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/customer-admin-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CustomerSource fornece a coleção inicial de clientes com pedidos aninhados
type CustomerSource interface {
	LoadCustomers() ([]domain.Customer, error)
}

// FileSource lê a coleção de um arquivo JSON local
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// LoadCustomers decodifica o arquivo configurado. A validação estrutural
// (identificadores únicos) fica a cargo do RecordStore na carga.
func (s *FileSource) LoadCustomers() ([]domain.Customer, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o arquivo de clientes %s", s.path)
	}

	var customers []domain.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar o arquivo de clientes %s", s.path)
	}

	return customers, nil
}
