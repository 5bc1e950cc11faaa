package resource

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Decode vuelca fields sobre dst (puntero a struct) usando los tags json.
//
// Es laxo: las claves ausentes dejan el campo como está, los
// números en string se convierten a número y viceversa, y las claves
// desconocidas se ignoran. Sobre un registro existente esto es un merge
// superficial; sobre uno vacío, la construcción del registro.
// Lo que no se convierte sin perder valor (1.9 o true a entero) es ErrInvalidInput.
func Decode(fields map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			strictNumberHook,
		),
		Result: dst,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// strictNumberHook rechaza bool hacia campos numéricos y floats con parte
// decimal o fuera de rango hacia enteros. WeaklyTypedInput los truncaría.
func strictNumberHook(from, to reflect.Type, data any) (any, error) {
	var isInt bool
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		isInt = true
	case reflect.Float32, reflect.Float64:
	default:
		return data, nil
	}

	switch v := data.(type) {
	case bool:
		return nil, fmt.Errorf("cannot use bool as %s", to)
	case float64:
		if !isInt {
			return data, nil
		}
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return nil, fmt.Errorf("cannot use %v as %s", v, to)
		}
	case float32:
		if isInt && float64(v) != math.Trunc(float64(v)) {
			return nil, fmt.Errorf("cannot use %v as %s", v, to)
		}
	}
	return data, nil
}

// without devuelve una copia de fields sin las claves indicadas.
// La comparación ignora mayúsculas porque Decode también lo hace.
func without(fields map[string]any, keys []string) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		skip := false
		for _, ro := range keys {
			if strings.EqualFold(k, ro) {
				skip = true
				break
			}
		}
		if !skip {
			out[k] = v
		}
	}
	return out
}
