// Package query строит выражения языка запросов GoodX.
//
// Выражение - дерево из вложенных массивов: ["AND", ["=", ["I", "diary_uid"], ["L", 7]], ...].
// Клиент дерево не вычисляет, а только сериализует в параметры filter и fields,
// поэтому имена операторов и вложенность должны совпадать с серверными один в один.
package query

import (
	"encoding/json"
)

const (
	opIdent = "I"
	opLit   = "L"
	opEq    = "="
	opNot   = "NOT"
	opAnd   = "AND"
	opCast  = "::"
	opAs    = "AS"
)

type Expr interface {
	json.Marshaler
	expr()
}

// Ident - ссылка на поле. Несколько имен означают переход по внешнему ключу:
// I("patient_uid", "debtor_uid", "name")
type Ident []string

func I(names ...string) Ident { return Ident(names) }

func (e Ident) MarshalJSON() ([]byte, error) {
	node := make([]any, 0, len(e)+1)
	node = append(node, opIdent)
	for _, name := range e {
		node = append(node, name)
	}
	return json.Marshal(node)
}

type Lit struct {
	Value any
}

func L(value any) Lit { return Lit{Value: value} }

func (e Lit) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{opLit, e.Value})
}

type EqExpr struct {
	Left, Right Expr
}

func Eq(left, right Expr) EqExpr { return EqExpr{Left: left, Right: right} }

func (e EqExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{opEq, e.Left, e.Right})
}

type NotExpr struct {
	Expr Expr
}

func Not(e Expr) NotExpr { return NotExpr{Expr: e} }

func (e NotExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{opNot, e.Expr})
}

type AndExpr []Expr

func And(exprs ...Expr) AndExpr { return AndExpr(exprs) }

func (e AndExpr) MarshalJSON() ([]byte, error) {
	node := make([]any, 0, len(e)+1)
	node = append(node, opAnd)
	for _, sub := range e {
		node = append(node, sub)
	}
	return json.Marshal(node)
}

type CastExpr struct {
	Expr Expr
	Type Expr
}

func Cast(e Expr, typ Expr) CastExpr { return CastExpr{Expr: e, Type: typ} }

// DateOf извлекает дату из отметки времени: ["::", e, ["I", "date"]]
func DateOf(e Expr) CastExpr { return Cast(e, I("date")) }

func (e CastExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{opCast, e.Expr, e.Type})
}

type AsExpr struct {
	Expr  Expr
	Alias string
}

func As(e Expr, alias string) AsExpr { return AsExpr{Expr: e, Alias: alias} }

func (e AsExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{opAs, e.Expr, e.Alias})
}

// Field - простое поле в списке fields, сериализуется строкой
type Field string

func (e Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(e))
}

func (Ident) expr()    {}
func (Lit) expr()      {}
func (EqExpr) expr()   {}
func (NotExpr) expr()  {}
func (AndExpr) expr()  {}
func (CastExpr) expr() {}
func (AsExpr) expr()   {}
func (Field) expr()    {}

// FieldEq - частый случай: поле = литерал
func FieldEq(name string, value any) EqExpr {
	return Eq(I(name), L(value))
}

// Fields собирает проекцию из простых имен полей
func Fields(names ...string) []Expr {
	fields := make([]Expr, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field(name))
	}
	return fields
}

func Encode(e Expr) (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func EncodeFields(fields []Expr) (string, error) {
	if fields == nil {
		fields = []Expr{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
