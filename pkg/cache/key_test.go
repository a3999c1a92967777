package cache

import (
	"testing"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "namespace and id",
			key:  Key{Namespace: "documents", ID: "doc-42"},
			want: "hydrate:documents:doc-42",
		},
		{
			name: "empty namespace",
			key:  Key{ID: "doc-42"},
			want: "hydrate:doc-42",
		},
		{
			name: "namespace with stray colons",
			key:  Key{Namespace: ":assets:", ID: "img-1"},
			want: "hydrate:assets:img-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_Determinism(t *testing.T) {
	key := Key{Namespace: "documents", ID: "doc-42"}

	first := key.String()
	second := key.String()

	if first != second {
		t.Errorf("key not deterministic: first %q, second %q", first, second)
	}
}
