package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(1950, time.March, 14)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"1950-03-14"`, string(out))

	var back Date
	require.NoError(t, json.Unmarshal(out, &back))
	require.True(t, back.Equal(d.Time))
}

func TestDateUnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	require.Error(t, json.Unmarshal([]byte(`"14/03/1950"`), &d))
	require.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
	require.Error(t, json.Unmarshal([]byte(`123`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1950, time.March, 14, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "1950-03-14", d.String())

	require.NoError(t, d.Scan("1950-03-14"))
	require.Equal(t, "1950-03-14", d.String())

	require.Error(t, d.Scan(123))
}

func TestMemberPatchEmpty(t *testing.T) {
	require.True(t, MemberPatch{}.Empty())

	bio := "some text"
	require.False(t, MemberPatch{Bio: &bio}.Empty())
}
