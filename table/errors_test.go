package table_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pschema/table"
	"github.com/stretchr/testify/require"
)

func TestValidateEdgeTable_OK(t *testing.T) {
	e := &table.EdgeTable{
		Subject:   []uint32{80, 92743},
		Predicate: []uint32{31, 31},
		Object:    []uint32{5, 5},
	}
	require.NoError(t, table.ValidateEdgeTable(e))
}

func TestValidateEdgeTable_MissingPredicate(t *testing.T) {
	e := &table.EdgeTable{
		Subject: []uint32{80},
		Object:  []uint32{5},
	}
	err := table.ValidateEdgeTable(e)
	require.Error(t, err)
	require.True(t, errors.Is(err, table.ErrSchemaFieldMissing))
}

func TestValidateEdgeTable_Empty(t *testing.T) {
	e := &table.EdgeTable{
		Subject:   []uint32{},
		Predicate: []uint32{},
		Object:    []uint32{},
	}
	err := table.ValidateEdgeTable(e)
	require.Error(t, err)
	require.True(t, errors.Is(err, table.ErrEmptyColumn))
}

func TestValidateEdgeTable_Nil(t *testing.T) {
	err := table.ValidateEdgeTable(nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, table.ErrSchemaFieldMissing))
}

func TestValidateEdgeTable_LengthMismatch(t *testing.T) {
	e := &table.EdgeTable{
		Subject:   []uint32{80, 81},
		Predicate: []uint32{31},
		Object:    []uint32{5, 5},
	}
	err := table.ValidateEdgeTable(e)
	require.Error(t, err)
	require.True(t, errors.Is(err, table.ErrColumnLengthMismatch))
}

func TestValidateEdgeTable_DTypeMismatch(t *testing.T) {
	e := &table.EdgeTable{
		Subject:   []uint32{80},
		Predicate: []uint32{31},
		Object:    []uint32{5},
		DType:     []table.DType{table.DTypeEntity, table.DTypeString},
	}
	err := table.ValidateEdgeTable(e)
	require.Error(t, err)
	require.True(t, errors.Is(err, table.ErrColumnLengthMismatch))
}
