package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/grid/internal/model"
)

func seqIDs() Option {
	n := 0
	return WithIDFunc(func() string {
		n++
		return fmt.Sprintf("r%d", n)
	})
}

func ids(recs []model.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestInsertAppendsEmptyRecord(t *testing.T) {
	s := New(seqIDs())
	a := s.Insert()
	b := s.Insert()

	assert.Equal(t, model.Record{ID: "r1"}, a)
	assert.Equal(t, "r2", b.ID)
	assert.Equal(t, []string{"r1", "r2"}, ids(s.All()))
}

func TestInsertSkipsCollidingID(t *testing.T) {
	calls := 0
	s := New(WithIDFunc(func() string {
		calls++
		if calls <= 2 {
			return "dup"
		}
		return "fresh"
	}))
	s.Insert()
	r := s.Insert()
	assert.Equal(t, "fresh", r.ID)
}

func TestInsertUsesUUIDByDefault(t *testing.T) {
	s := New()
	a, b := s.Insert(), s.Insert()
	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpdateMergesInPlace(t *testing.T) {
	s := New(seqIDs())
	s.Insert()
	r := s.Insert()
	s.Insert()

	st := model.StateOpen
	got, err := s.Update(r.ID, model.Patch{Title: model.Str("abc123"), State: &st})
	require.NoError(t, err)
	assert.Equal(t, model.Record{ID: "r2", Title: "abc123", State: model.StateOpen}, got)

	got, err = s.Update(r.ID, model.Patch{Description: model.Str("d")})
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.Title)
	assert.Equal(t, "d", got.Description)
	assert.Equal(t, 1, s.Index(r.ID))
}

func TestUnknownIDIsNotFound(t *testing.T) {
	s := New(seqIDs())
	s.Insert()

	_, err := s.Update("nope", model.Patch{})
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Delete("nope")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "delete", nf.Op)
	assert.Equal(t, "nope", nf.ID)

	_, err = s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.OpenEdit("nope"), ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestDeleteDropsEditKey(t *testing.T) {
	s := New(seqIDs())
	a := s.Insert()
	b := s.Insert()
	require.NoError(t, s.OpenEdit(a.ID))
	require.NoError(t, s.OpenEdit(b.ID))

	require.NoError(t, s.Delete(a.ID))
	assert.False(t, s.IsEditing(a.ID))
	assert.Equal(t, []string{b.ID}, s.EditKeys())
	assert.Equal(t, []string{b.ID}, ids(s.All()))
}

func TestAllIsSnapshot(t *testing.T) {
	s := New(seqIDs())
	s.Insert()
	snap := s.All()
	snap[0].Title = "changed"
	got, _ := s.Get("r1")
	assert.Empty(t, got.Title)
}

func TestCloseEditUnknownIsNoop(t *testing.T) {
	s := New(seqIDs())
	s.CloseEdit("missing")
	assert.Empty(t, s.EditKeys())
}

func TestEditKeysFollowRecordOrder(t *testing.T) {
	s := New(seqIDs())
	s.Seed(3, false)
	require.NoError(t, s.OpenEdit("r3"))
	require.NoError(t, s.OpenEdit("r1"))
	assert.Equal(t, []string{"r1", "r3"}, s.EditKeys())
}

func TestSeed(t *testing.T) {
	s := New(seqIDs())
	recs := s.Seed(20, true)

	require.Len(t, recs, 20)
	assert.Equal(t, "Activity 0", recs[0].Title)
	assert.Equal(t, "Activity 19", recs[19].Title)
	assert.Equal(t, seedDescription, recs[5].Description)
	assert.Len(t, s.EditKeys(), 20)

	s2 := New(seqIDs())
	s2.Seed(2, false)
	assert.Empty(t, s2.EditKeys())
}
