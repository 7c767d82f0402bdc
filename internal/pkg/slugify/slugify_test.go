package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "简单名字",
			in:   "Aleph One",
			want: "aleph-one",
		},
		{
			name: "标点折叠",
			in:   "Marathon: Rubicon X!",
			want: "marathon-rubicon-x",
		},
		{
			name: "首尾空白和连续分隔符",
			in:   "  The  --  Gray   Incident ",
			want: "the-gray-incident",
		},
		{
			name: "数字保留",
			in:   "Capture the Flag 2",
			want: "capture-the-flag-2",
		},
		{
			name: "全符号",
			in:   "???",
			want: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
