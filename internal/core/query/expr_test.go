package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Golden(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			name: "bookings by diary and date",
			expr: And(
				FieldEq("diary_uid", 7),
				Eq(DateOf(I("start_time")), L("2024-03-01")),
			),
			want: `["AND",["=",["I","diary_uid"],["L",7]],["=",["::",["I","start_time"],["I","date"]],["L","2024-03-01"]]]`,
		},
		{
			name: "reference data by entity and diary",
			expr: And(
				FieldEq("entity_uid", 2),
				FieldEq("diary_uid", 7),
				Not(I("disabled")),
			),
			want: `["AND",["=",["I","entity_uid"],["L",2]],["=",["I","diary_uid"],["L",7]],["NOT",["I","disabled"]]]`,
		},
		{
			name: "single comparison",
			expr: FieldEq("entity_uid", 2),
			want: `["=",["I","entity_uid"],["L",2]]`,
		},
		{
			name: "relation traversal",
			expr: I("patient_uid", "debtor_uid", "name"),
			want: `["I","patient_uid","debtor_uid","name"]`,
		},
		{
			name: "boolean and null literals",
			expr: And(Eq(I("cancelled"), L(false)), Eq(I("invoice_nr"), L(nil))),
			want: `["AND",["=",["I","cancelled"],["L",false]],["=",["I","invoice_nr"],["L",null]]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeFields(t *testing.T) {
	fields := append([]Expr{
		As(I("patient_uid", "name"), "patient_name"),
		As(I("patient_uid", "debtor_uid", "surname"), "debtor_surname"),
	}, Fields("uid", "start_time")...)

	got, err := EncodeFields(fields)
	require.NoError(t, err)
	assert.Equal(t,
		`[["AS",["I","patient_uid","name"],"patient_name"],["AS",["I","patient_uid","debtor_uid","surname"],"debtor_surname"],"uid","start_time"]`,
		got,
	)
}

func TestEncodeFields_Empty(t *testing.T) {
	got, err := EncodeFields(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
}
