package dto

import (
	"carehub/shared/constant"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"

	MaxLimit = 100
)

// QueryParams carries paging and ordering. SortBy is only trusted after AllowSort or the repository whitelist.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty,lte=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func positive(values url.Values, key string) int {
	n, err := strconv.Atoi(values.Get(key))
	if err != nil || n < 1 {
		return 0
	}

	return n
}

// FromRequest reads page, limit, sort_by and sort_dir. Malformed values are ignored and
// limit is capped at MaxLimit. With defaults set, a missing page or limit gets the package default.
func (q *QueryParams) FromRequest(r *http.Request, defaults bool) {
	values := r.URL.Query()

	if page := positive(values, constant.RequestParamPage); page > 0 {
		q.Page = page
	}

	if limit := positive(values, constant.RequestParamLimit); limit > 0 {
		q.Limit = min(limit, MaxLimit)
	}

	if sortBy := values.Get(constant.RequestParamSortBy); sortBy != constant.Empty {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !defaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// AllowSort keeps SortBy only when it names one of the given columns, falling back to the
// given default column and direction otherwise.
func (q *QueryParams) AllowSort(defaultColumn, defaultDir string, columns ...string) {
	if !slices.Contains(columns, q.SortBy) {
		q.SortBy = defaultColumn
	}

	if q.SortDir == constant.Empty {
		q.SortDir = defaultDir
	}
}
