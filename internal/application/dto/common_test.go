package dto_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/lms-api/internal/application/dto"
)

func TestPageQuery_Normalize(t *testing.T) {
	q := dto.PageQuery{}
	q.Normalize(100)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, 0, q.Offset())

	q = dto.PageQuery{Page: 3, PageSize: 10}
	q.Normalize(100)
	assert.Equal(t, 20, q.Offset())

	q = dto.PageQuery{Page: -4, PageSize: 5000}
	q.Normalize(100)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 100, q.PageSize, "pageSize se recorta al máximo configurado")
}

func TestPageQuery_PaginaEnormeNoDesbordaElOffset(t *testing.T) {
	q := dto.PageQuery{Page: math.MaxInt, PageSize: 50}
	q.Normalize(100)
	assert.Equal(t, dto.MaxPage, q.Page)
	assert.Equal(t, (dto.MaxPage-1)*50, q.Offset())

	q = dto.PageQuery{Page: math.MaxInt, PageSize: math.MaxInt}
	q.Normalize(0)
	assert.Positive(t, q.Offset(), "sin tope de pageSize el offset no puede volverse negativo")
}

func TestNewPageResult_ItemsNuncaNil(t *testing.T) {
	res := dto.NewPageResult[string](nil, 0, dto.PageQuery{Page: 1, PageSize: 10})
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}
