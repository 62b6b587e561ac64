package csvloader

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/dataset"
)

// record dá acesso às colunas de uma linha pelo nome do cabeçalho
type record struct {
	values []string
	index  map[string]int
}

func (r record) get(column string) string {
	return r.values[r.index[column]]
}

// readTable lê um arquivo delimitado e chama fn para cada linha de dados.
// As colunas obrigatórias precisam existir no cabeçalho com o nome exato.
func readTable(ctx context.Context, path, table string, required []string, fn func(line int, row record) error) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(dataset.ErrMissingFile, "tabela %s: %s", table, path)
		}
		return errors.Wrapf(err, "erro ao abrir tabela %s", table)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return errors.Wrapf(dataset.ErrMissingColumn, "tabela %s: arquivo sem cabeçalho", table)
	}
	if err != nil {
		return errors.Wrapf(err, "erro ao ler cabeçalho da tabela %s", table)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[name] = i
	}

	for _, column := range required {
		if _, ok := index[column]; !ok {
			return errors.Wrapf(dataset.ErrMissingColumn, "tabela %s: coluna %s", table, column)
		}
	}

	line := 1
	for {
		values, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return errors.Wrapf(err, "erro ao ler tabela %s", table)
		}

		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if err := fn(line, record{values: values, index: index}); err != nil {
			return err
		}
	}
}
