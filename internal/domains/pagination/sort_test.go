package pagedomain_test

import (
	"testing"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		want    pagedomain.Sort
		wantErr bool
	}{
		{name: "empty", expr: "  ", want: nil},
		{name: "single field", expr: "id", want: pagedomain.Sort{{Field: "id"}}},
		{
			name: "multiple keys",
			expr: "age:DESC, name:asc",
			want: pagedomain.Sort{{Field: "age", Desc: true}, {Field: "name"}},
		},
		{name: "bad order", expr: "age:down", wantErr: true},
		{name: "too many colons", expr: "a:b:c", wantErr: true},
		{name: "empty field", expr: "id,,name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pagedomain.ParseSort(tt.expr)
			if tt.wantErr {
				require.ErrorIs(t, err, pagedomain.ErrInvalidArguments)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
