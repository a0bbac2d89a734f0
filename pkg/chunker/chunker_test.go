package chunker

import (
	"fmt"
	"keptn/promotion-formatter/pkg/model"
	"reflect"
	"strings"
	"testing"
)

func TestChunk(t *testing.T) {
	type args struct {
		targets model.TargetList
		size    int
	}
	tests := []struct {
		name string
		args args
		want []model.TargetGroup
	}{
		{
			name: "no targets",
			args: args{targets: model.ParseTargets(""), size: 3},
			want: []model.TargetGroup{},
		},
		{
			name: "single target",
			args: args{targets: model.ParseTargets("1"), size: 3},
			want: []model.TargetGroup{{"1"}},
		},
		{
			name: "five targets",
			args: args{targets: model.ParseTargets("1,2,3,4,5"), size: 3},
			want: []model.TargetGroup{{"1", "2", "3"}, {"4", "5"}},
		},
		{
			name: "exactly three",
			args: args{targets: model.ParseTargets("1,2,3"), size: 3},
			want: []model.TargetGroup{{"1", "2", "3"}},
		},
		{
			name: "long list",
			args: args{targets: model.ParseTargets("1,2,3,4,5,6,7,8,9"), size: 3},
			want: []model.TargetGroup{{"1", "2", "3"}, {"4", "5", "6"}, {"7", "8", "9"}},
		},
		{
			name: "long list plus one",
			args: args{targets: model.ParseTargets("1,2,3,4,5,6,7,8,9,10"), size: 3},
			want: []model.TargetGroup{{"1", "2", "3"}, {"4", "5", "6"}, {"7", "8", "9"}, {"10"}},
		},
		{
			name: "non positive size falls back to default",
			args: args{targets: model.ParseTargets("1,2,3,4"), size: 0},
			want: []model.TargetGroup{{"1", "2", "3"}, {"4"}},
		},
		{
			name: "custom size",
			args: args{targets: model.ParseTargets("1,2,3,4,5"), size: 2},
			want: []model.TargetGroup{{"1", "2"}, {"3", "4"}, {"5"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chunk(tt.args.targets, tt.args.size); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chunk() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChunkGroupSizes(t *testing.T) {
	for n := 0; n <= 20; n++ {
		raw := make([]string, n)
		for i := range raw {
			raw[i] = fmt.Sprintf("t%d", i)
		}
		targets := model.ParseTargets(strings.Join(raw, ","))
		groups := Chunk(targets, DefaultGroupSize)

		wantGroups := (n + DefaultGroupSize - 1) / DefaultGroupSize
		if len(groups) != wantGroups {
			t.Fatalf("n=%d: got %d groups, want %d", n, len(groups), wantGroups)
		}
		var joined []string
		for i, g := range groups {
			if i < len(groups)-1 && len(g) != DefaultGroupSize {
				t.Errorf("n=%d: group %d has %d elements", n, i, len(g))
			}
			joined = append(joined, g...)
		}
		if n > 0 && !reflect.DeepEqual(joined, raw) {
			t.Errorf("n=%d: concatenated groups = %v, want %v", n, joined, raw)
		}
	}
}

func TestChunkDoesNotModifyInput(t *testing.T) {
	targets := model.ParseTargets("1,2,3,4")
	groups := Chunk(targets, DefaultGroupSize)
	groups[0][0] = "changed"
	if targets[0] != "1" {
		t.Errorf("Chunk() shares storage with its input")
	}
}
