package graphql

import (
	"encoding/json"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"
)

// Decimal escalar para montos exactos. Serializa como string con dos
// decimales (la escala de las columnas NUMERIC); la entrada acepta string,
// entero o número, y las strings y literales se convierten sin pasar por
// float64.
var Decimal = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "An exact decimal amount, serialized as a string with two decimal places.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case decimal.Decimal:
			return v.StringFixed(2)
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			return v.StringFixed(2)
		default:
			return nil
		}
	},
	ParseValue: parseDecimalValue,
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch v := valueAST.(type) {
		case *ast.StringValue:
			return parseDecimalString(v.Value)
		case *ast.IntValue:
			return parseDecimalString(v.Value)
		case *ast.FloatValue:
			return parseDecimalString(v.Value)
		default:
			return nil
		}
	},
})

func parseDecimalValue(value interface{}) interface{} {
	switch v := value.(type) {
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		return *v
	case string:
		return parseDecimalString(v)
	case *string:
		if v == nil {
			return nil
		}
		return parseDecimalString(*v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return nil
	}
}

// parseDecimalString nil si el texto no es un decimal válido: el escalar
// rechaza el argumento en vez de adivinar.
func parseDecimalString(s string) interface{} {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return d
}

// JSONString escalar para objetos JSON codificados como string, al estilo
// de las cargas masivas: cada fila llega como `"{\"name\": ...}"`.
// También acepta el objeto ya decodificado cuando viene por variables.
var JSONString = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "JSONString",
	Description: "A JSON object encoded as a string.",
	Serialize: func(value interface{}) interface{} {
		b, err := json.Marshal(value)
		if err != nil {
			return nil
		}
		return string(b)
	},
	ParseValue: func(value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			return parseJSONObject(v)
		case *string:
			if v == nil {
				return nil
			}
			return parseJSONObject(*v)
		case map[string]interface{}:
			return v
		default:
			return nil
		}
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if v, ok := valueAST.(*ast.StringValue); ok {
			return parseJSONObject(v.Value)
		}
		return nil
	},
})

func parseJSONObject(s string) interface{} {
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil
	}
	return m
}
