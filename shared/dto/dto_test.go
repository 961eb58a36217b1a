package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"lodge/shared/constant"
	"lodge/shared/dto"
	"lodge/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 10, 21, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "room_number",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "room_number",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq operator with table",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "Confirmed",
				Table:    "bookings",
			},
			expectedWhere: "bookings.status = :status",
			expectedArgs:  map[string]any{"status": "Confirmed"},
		},
		{
			name: "less operator",
			filter: dto.Filter{
				ArgName:  "check_out",
				Field:    "check_in",
				Operator: dto.FilterOperatorLess,
				Value:    "2025-10-29",
				Table:    "bookings",
			},
			expectedWhere: "bookings.check_in < :check_out",
			expectedArgs:  map[string]any{"check_out": "2025-10-29"},
		},
		{
			name: "greater operator",
			filter: dto.Filter{
				ArgName:  "check_in",
				Field:    "check_out",
				Operator: dto.FilterOperatorGreater,
				Value:    "2025-10-27",
				Table:    "bookings",
			},
			expectedWhere: "bookings.check_out > :check_in",
			expectedArgs:  map[string]any{"check_in": "2025-10-27"},
		},
		{
			name: "not_eq operator",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorNotEq,
				Value:    "Cancelled",
				Table:    "bookings",
			},
			expectedWhere: "bookings.status != :status",
			expectedArgs:  map[string]any{"status": "Cancelled"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Operator: "between",
				Value:    "x",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where clause %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, value := range tt.expectedArgs {
				if args[key] != value {
					t.Errorf("expected arg %s to be %v, got %v", key, value, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Operator: dto.FilterOperatorEq,
				Value:    "room-1",
				Table:    "bookings",
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						ArgName:  "status_confirmed",
						Field:    "status",
						Operator: dto.FilterOperatorEq,
						Value:    "Confirmed",
						Table:    "bookings",
					},
					dto.Filter{
						ArgName:  "status_checked_in",
						Field:    "status",
						Operator: dto.FilterOperatorEq,
						Value:    "Checked-In",
						Table:    "bookings",
					},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(bookings.room_id = :room_id AND (bookings.status = :status_confirmed OR bookings.status = :status_checked_in))"
	if where != expected {
		t.Errorf("expected where clause %q, got %q", expected, where)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}
