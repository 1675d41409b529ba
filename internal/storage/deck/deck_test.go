package deck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/DanRulev/nihongo.git/internal/scheduler"
	mock_deck "github.com/DanRulev/nihongo.git/internal/storage/deck/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func newDeckMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_deck.MockBackendI)) *Deck {
	backend := mock_deck.NewMockBackendI(ctrl)
	if setupMock != nil {
		setupMock(backend)
	}

	return New(backend, scheduler.NewLeitner(5, clock), 5, zap.NewNop())
}

func newFrequencyDeckMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_deck.MockBackendI)) *Deck {
	backend := mock_deck.NewMockBackendI(ctrl)
	if setupMock != nil {
		setupMock(backend)
	}

	return New(backend, scheduler.NewFrequency(fixedRand(0)), 0, zap.NewNop())
}

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func terms(items []*models.VocabItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Term)
	}
	return out
}

func TestDeck_Load(t *testing.T) {
	t.Parallel()

	stored := models.Collection{
		Strategy: models.StrategyLeitner,
		MaxBox:   5,
		Items: []models.VocabItem{
			{Term: "犬", Translation: "chien", Box: &models.BoxState{BoxNumber: 2, NextReview: now.Add(time.Hour)}},
			{Term: "猫", Translation: "chat"},
		},
	}

	tests := []struct {
		name       string
		f          func(*mock_deck.MockBackendI)
		assertFunc func(t *testing.T, d *Deck)
		wantErr    error
	}{
		{
			name: "success keeps state and fills missing state",
			f: func(mb *mock_deck.MockBackendI) {
				mb.EXPECT().Load(gomock.Any()).Return(stored, nil)
			},
			assertFunc: func(t *testing.T, d *Deck) {
				items := d.Items()
				require.Len(t, items, 2)
				assert.Equal(t, uint(2), items[0].Box.BoxNumber)
				require.NotNil(t, items[1].Box)
				assert.Equal(t, now, items[1].Box.NextReview)
			},
		},
		{
			name: "other strategy is migrated",
			f: func(mb *mock_deck.MockBackendI) {
				mb.EXPECT().Load(gomock.Any()).Return(models.Collection{
					Strategy: models.StrategyFrequency,
					Items: []models.VocabItem{
						{Term: "木", Translation: "arbre", Frequency: &models.FrequencyState{SuccessCount: 1, AttemptCount: 3}},
					},
				}, nil)
			},
			assertFunc: func(t *testing.T, d *Deck) {
				item, ok := d.Find("木")
				require.True(t, ok)
				assert.Nil(t, item.Frequency)
				require.NotNil(t, item.Box)
				assert.Equal(t, uint(0), item.Box.BoxNumber)
				assert.True(t, item.IsDue(now))
			},
		},
		{
			name: "boxes above a lowered box count are clamped",
			f: func(mb *mock_deck.MockBackendI) {
				mb.EXPECT().Load(gomock.Any()).Return(models.Collection{
					Strategy: models.StrategyLeitner,
					MaxBox:   10,
					Items: []models.VocabItem{
						{Term: "犬", Translation: "chien", Box: &models.BoxState{BoxNumber: 9, NextReview: now.Add(time.Hour)}},
						{Term: "猫", Translation: "chat", Box: &models.BoxState{BoxNumber: 4, NextReview: now}},
					},
				}, nil)
			},
			assertFunc: func(t *testing.T, d *Deck) {
				items := d.Items()
				require.Len(t, items, 2)
				assert.Equal(t, uint(4), items[0].Box.BoxNumber)
				assert.Equal(t, now.Add(time.Hour), items[0].Box.NextReview)
				assert.Equal(t, uint(4), items[1].Box.BoxNumber)
			},
		},
		{
			name: "empty store",
			f: func(mb *mock_deck.MockBackendI) {
				mb.EXPECT().Load(gomock.Any()).Return(models.Collection{}, nil)
			},
			assertFunc: func(t *testing.T, d *Deck) {
				assert.Equal(t, 0, d.Len())
			},
		},
		{
			name: "backend error",
			f: func(mb *mock_deck.MockBackendI) {
				mb.EXPECT().Load(gomock.Any()).Return(models.Collection{}, models.ErrCorruptStore)
			},
			wantErr: models.ErrPersistence,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newDeckMock(t, ctrl, tt.f)

			err := d.Load(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.assertFunc(t, d)
		})
	}
}

func TestDeck_LoadFrequencyCounters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		state   models.FrequencyState
		wantErr error
	}{
		{name: "consistent counters", state: models.FrequencyState{SuccessCount: 2, AttemptCount: 7}},
		{name: "all correct", state: models.FrequencyState{SuccessCount: 3, AttemptCount: 3}},
		{name: "more successes than attempts", state: models.FrequencyState{SuccessCount: 7, AttemptCount: 2}, wantErr: models.ErrCorruptStore},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			st := tt.state
			d := newFrequencyDeckMock(t, ctrl, func(mb *mock_deck.MockBackendI) {
				mb.EXPECT().Load(gomock.Any()).Return(models.Collection{
					Strategy: models.StrategyFrequency,
					Items: []models.VocabItem{
						{Term: "水", Translation: "eau", Frequency: &models.FrequencyState{}},
						{Term: "木", Translation: "arbre", Frequency: &st},
					},
				}, nil)
			})

			err := d.Load(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, models.ErrPersistence)
				assert.Equal(t, 0, d.Len())
				return
			}
			require.NoError(t, err)
			item, ok := d.Find("木")
			require.True(t, ok)
			assert.Equal(t, tt.state, *item.Frequency)
		})
	}
}

func TestDeck_LoadClampedBoxesSaveConsistently(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var saved models.Collection
	d := newDeckMock(t, ctrl, func(mb *mock_deck.MockBackendI) {
		mb.EXPECT().Load(gomock.Any()).Return(models.Collection{
			Strategy: models.StrategyLeitner,
			MaxBox:   10,
			Items: []models.VocabItem{
				{Term: "犬", Translation: "chien", Box: &models.BoxState{BoxNumber: 9, NextReview: now}},
			},
		}, nil)
		mb.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c models.Collection) error {
			saved = c
			return nil
		})
	})

	require.NoError(t, d.Load(context.Background()))
	require.NoError(t, d.Save(context.Background()))

	assert.Equal(t, uint(5), saved.MaxBox)
	require.Len(t, saved.Items, 1)
	assert.Less(t, saved.Items[0].Box.BoxNumber, saved.MaxBox)
}

func TestDeck_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		items   []models.VocabItem
		wantErr error
		want    []string
	}{
		{
			name:  "success",
			items: []models.VocabItem{{Term: "山", Translation: "montagne"}, {Term: "川", Translation: "rivière", Theme: "nature"}},
			want:  []string{"山", "川"},
		},
		{
			name:    "duplicate term rejected",
			items:   []models.VocabItem{{Term: "山", Translation: "montagne"}, {Term: " 山 ", Translation: "mont"}},
			wantErr: models.ErrDuplicateTerm,
			want:    []string{"山"},
		},
		{
			name:    "empty translation",
			items:   []models.VocabItem{{Term: "空", Translation: "  "}},
			wantErr: models.ErrEmptyField,
		},
		{
			name:    "term too long",
			items:   []models.VocabItem{{Term: string(make([]byte, 200)) + "x", Translation: "long"}},
			wantErr: models.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newDeckMock(t, ctrl, nil)

			var err error
			for _, it := range tt.items {
				if err = d.Add(it); err != nil {
					break
				}
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, models.ErrValidation)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, len(tt.want), d.Len())
			for i, it := range d.Items() {
				assert.Equal(t, tt.want[i], it.Term)
				require.NotNil(t, it.Box)
				assert.Equal(t, uint(0), it.Box.BoxNumber)
				assert.Equal(t, now, it.Box.NextReview)
			}
		})
	}
}

func TestDeck_Save(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var saved models.Collection
	d := newDeckMock(t, ctrl, func(mb *mock_deck.MockBackendI) {
		mb.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c models.Collection) error {
				saved = c
				return nil
			})
		mb.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	})

	require.NoError(t, d.Add(models.VocabItem{Term: "火", Translation: "feu"}))
	require.NoError(t, d.Save(context.Background()))

	assert.Equal(t, models.StrategyLeitner, saved.Strategy)
	assert.Equal(t, uint(5), saved.MaxBox)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "feu", saved.Items[0].Translation)

	require.Error(t, d.Save(context.Background()))
}

func TestDeck_Dedup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeckMock(t, ctrl, func(mb *mock_deck.MockBackendI) {
		mb.EXPECT().Load(gomock.Any()).Return(models.Collection{
			Strategy: models.StrategyLeitner,
			Items: []models.VocabItem{
				{Term: "b", Translation: "first b"},
				{Term: "a", Translation: "first a"},
				{Term: "b", Translation: "second b"},
				{Term: "c", Translation: "c"},
				{Term: "a", Translation: "second a"},
			},
		}, nil)
	})
	require.NoError(t, d.Load(context.Background()))

	first, ok := d.Find("b")
	require.True(t, ok)
	assert.Equal(t, "first b", first.Translation)

	assert.Equal(t, 2, d.Dedup())
	once := terms(d.Items())
	assert.Equal(t, []string{"b", "a", "c"}, once)

	assert.Equal(t, 0, d.Dedup())
	assert.Equal(t, once, terms(d.Items()))

	item, ok := d.Find("a")
	require.True(t, ok)
	assert.Equal(t, "first a", item.Translation)
}

func TestDeck_Sorted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeckMock(t, ctrl, nil)
	for _, term := range []string{"さくら", "あめ", "かぜ"} {
		require.NoError(t, d.Add(models.VocabItem{Term: term, Translation: "x"}))
	}

	sorted := d.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "あめ", sorted[0].Term)
	assert.Equal(t, "かぜ", sorted[1].Term)
	assert.Equal(t, "さくら", sorted[2].Term)
	assert.Equal(t, []string{"さくら", "あめ", "かぜ"}, terms(d.Items()))
}
