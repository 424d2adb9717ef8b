package i18n

import "testing"

func TestCommitLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: "0 commits today"},
		{count: 1, want: "1 commit today"},
		{count: 2, want: "2 commits today"},
		{count: 35, want: "35 commits today"},
	}
	for _, tc := range tests {
		if got := CommitLabel(tc.count); got != tc.want {
			t.Fatalf("CommitLabel(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}
