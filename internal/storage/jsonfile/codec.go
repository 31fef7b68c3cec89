// Package jsonfile читает и пишет снимок склада в виде плоского JSON-объекта
// {"item": qty}. Порядок ключей в файле совпадает с порядком позиций склада.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/vladislavdragonenkov/inventory/internal/domain"
)

// DefaultPath — файл остатков по умолчанию.
const DefaultPath = "inventory.json"

const filePerm = 0o644

// Read загружает снимок из файла.
// Отсутствующий файл даёт domain.ErrFileNotFound, битый — domain.ErrMalformedJSON.
func Read(path string) ([]domain.StockEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	entries, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Write перезаписывает файл снимком склада.
func Write(path string, entries []domain.StockEntry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Decode разбирает JSON-объект, сохраняя порядок ключей.
func Decode(data []byte) ([]domain.StockEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, malformed(fmt.Errorf("expected object, got %v", tok))
	}

	var entries []domain.StockEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, malformed(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, malformed(fmt.Errorf("unexpected key token %v", keyTok))
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, malformed(err)
		}
		qty, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return nil, malformed(fmt.Errorf("item %q: value %s is not an integer", key, raw))
		}
		entries = append(entries, domain.StockEntry{Item: domain.ItemID(key), Qty: qty})
	}

	// закрывающая '}'
	if _, err := dec.Token(); err != nil {
		return nil, malformed(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, malformed(errors.New("unexpected data after object"))
	}

	return entries, nil
}

// Encode сериализует позиции в JSON-объект с отступом в два пробела.
func Encode(entries []domain.StockEntry) ([]byte, error) {
	var buf bytes.Buffer
	if len(entries) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("{\n")
	for i, e := range entries {
		key, err := json.Marshal(string(e.Item))
		if err != nil {
			return nil, fmt.Errorf("encode item %q: %w", e.Item, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.WriteString(strconv.FormatInt(e.Qty, 10))
		if i < len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrMalformedJSON, err)
}
