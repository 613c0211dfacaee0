package main

import "testing"

func TestParseFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    map[string]string
		wantErr bool
	}{
		{
			name: "no args",
			args: nil,
			want: nil,
		},
		{
			name: "single pair",
			args: []string{"difficulty=hard"},
			want: map[string]string{"difficulty": "hard"},
		},
		{
			name: "multiple pairs",
			args: []string{"difficulty=hard", "company=Google"},
			want: map[string]string{"difficulty": "hard", "company": "Google"},
		},
		{
			name: "empty value is allowed",
			args: []string{"company="},
			want: map[string]string{"company": ""},
		},
		{
			name: "value may contain equals",
			args: []string{"tag=a=b"},
			want: map[string]string{"tag": "a=b"},
		},
		{
			name:    "missing equals",
			args:    []string{"difficulty"},
			wantErr: true,
		},
		{
			name:    "empty key",
			args:    []string{"=hard"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFilterArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFilterArgs() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFilterArgs() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseFilterArgs() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("parseFilterArgs()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
