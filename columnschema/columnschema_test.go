package columnschema_test

import (
	"testing"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/scanforge/colfilter/columnschema"
	"github.com/scanforge/colfilter/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *columnschema.Schema {
	return columnschema.NewSchema(arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "score", Type: arrow.PrimitiveTypes.Float64},
		{Name: "active", Type: arrow.FixedWidthTypes.Boolean},
		{Name: "name", Type: arrow.BinaryTypes.String},
	}, nil))
}

func TestDomainOfKnownColumns(t *testing.T) {
	s := testSchema()

	d, err := s.DomainOf("id")
	require.NoError(t, err)
	assert.Equal(t, columnschema.DomainInt64, d)

	d, err = s.DomainOf("score")
	require.NoError(t, err)
	assert.Equal(t, columnschema.DomainDouble, d)

	d, err = s.DomainOf("active")
	require.NoError(t, err)
	assert.Equal(t, columnschema.DomainBool, d)

	d, err = s.DomainOf("name")
	require.NoError(t, err)
	assert.Equal(t, columnschema.DomainBytes, d)
}

func TestDomainOfUnknownColumn(t *testing.T) {
	s := testSchema()
	_, err := s.DomainOf("missing")
	assert.Error(t, err)
}

func TestValidateAcceptsMatchingKind(t *testing.T) {
	s := testSchema()
	assert.NoError(t, s.Validate("id", filter.NewBigintRange(0, 10, false)))
}

func TestValidateRejectsMismatchedKind(t *testing.T) {
	s := testSchema()
	err := s.Validate("id", filter.NewBytesRange([]byte("a"), []byte("z"), false, false, false, false, false))
	assert.Error(t, err)
}

func TestValidateAcceptsTerminalsEverywhere(t *testing.T) {
	s := testSchema()
	assert.NoError(t, s.Validate("id", filter.NewIsNull()))
	assert.NoError(t, s.Validate("name", filter.NewAlwaysTrue()))
}
