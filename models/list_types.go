package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList é uma lista de strings guardada como JSON numa coluna text,
// para que sqlite e mysql compartilhem o mesmo schema.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("StringList: tipo inesperado %T", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Extra é um adicional do cardápio com preço próprio.
type Extra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ExtraList segue o mesmo esquema JSON-em-text da StringList.
type ExtraList []Extra

func (l ExtraList) Value() (driver.Value, error) {
	if l == nil {
		l = ExtraList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ExtraList) Scan(value interface{}) error {
	if value == nil {
		*l = ExtraList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("ExtraList: tipo inesperado %T", value)
	}
	if len(data) == 0 {
		*l = ExtraList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// PriceOf devolve o preço do adicional pelo nome; nomes desconhecidos
// valem zero e são ignorados na precificação.
func (l ExtraList) PriceOf(name string) float64 {
	for _, e := range l {
		if e.Name == name {
			return e.Price
		}
	}
	return 0
}
