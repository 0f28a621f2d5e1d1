package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/storage"
)

// memStore backs every fake repository so cascades behave like the real schema.
type memStore struct {
	mu          sync.Mutex
	nextID      int
	users       map[int]*models.User
	tournaments map[int]*models.Tournament
	competitors map[int]*models.Competitor
	rounds      map[int]*models.Round
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[int]*models.User{},
		tournaments: map[int]*models.Tournament{},
		competitors: map[int]*models.Competitor{},
		rounds:      map[int]*models.Round{},
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func copyRound(r *models.Round) models.Round {
	out := *r
	out.Pairings = append([]models.Pairing(nil), r.Pairings...)
	return out
}

func (m *memStore) roundsOf(tournamentID int) []*models.Round {
	var list []*models.Round
	for _, r := range m.rounds {
		if r.TournamentID == tournamentID {
			list = append(list, r)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Number < list[j].Number })
	return list
}

type fakeTournamentRepo struct{ *memStore }

func (r fakeTournamentRepo) Create(_ context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.tournaments {
		if existing.OrganizerID == t.OrganizerID && existing.Name == t.Name {
			return repositories.ErrTournamentNameConflict
		}
	}
	t.ID = r.id()
	t.CreatedAt = time.Now()
	stored := *t
	r.tournaments[t.ID] = &stored
	return nil
}

func (r fakeTournamentRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	out := *t
	return &out, nil
}

func (r fakeTournamentRepo) List(_ context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []models.Tournament
	for _, t := range r.tournaments {
		if filter.OrganizerID != nil && t.OrganizerID != *filter.OrganizerID {
			continue
		}
		list = append(list, *t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r fakeTournamentRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[id]; !ok {
		return repositories.ErrTournamentNotFound
	}
	delete(r.tournaments, id)
	for cid, c := range r.competitors {
		if c.TournamentID == id {
			delete(r.competitors, cid)
		}
	}
	for rid, round := range r.rounds {
		if round.TournamentID == id {
			delete(r.rounds, rid)
		}
	}
	return nil
}

type fakeCompetitorRepo struct{ *memStore }

func (r fakeCompetitorRepo) Create(_ context.Context, c *models.Competitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[c.TournamentID]; !ok {
		return repositories.ErrCompetitorTournamentInvalid
	}
	for _, existing := range r.competitors {
		if existing.TournamentID == c.TournamentID && existing.Name == c.Name {
			return repositories.ErrCompetitorNameConflict
		}
	}
	c.ID = r.id()
	c.CreatedAt = time.Now()
	stored := *c
	r.competitors[c.ID] = &stored
	return nil
}

func (r fakeCompetitorRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Competitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.competitors[id]
	if !ok {
		return nil, repositories.ErrCompetitorNotFound
	}
	out := *c
	return &out, nil
}

func (r fakeCompetitorRepo) ListByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int) ([]*models.Competitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*models.Competitor
	for _, c := range r.competitors {
		if c.TournamentID == tournamentID {
			out := *c
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r fakeCompetitorRepo) update(id int, fn func(c *models.Competitor)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.competitors[id]
	if !ok {
		return repositories.ErrCompetitorNotFound
	}
	fn(c)
	return nil
}

func (r fakeCompetitorRepo) UpdateName(_ context.Context, id int, name string) error {
	return r.update(id, func(c *models.Competitor) { c.Name = name })
}

func (r fakeCompetitorRepo) UpdateActive(_ context.Context, id int, active bool) error {
	return r.update(id, func(c *models.Competitor) { c.Active = active })
}

func (r fakeCompetitorRepo) UpdateScore(_ context.Context, _ repositories.SQLExecutor, id int, score float64) error {
	return r.update(id, func(c *models.Competitor) { c.Score = score })
}

func (r fakeCompetitorRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.competitors[id]; !ok {
		return repositories.ErrCompetitorNotFound
	}
	delete(r.competitors, id)
	for _, round := range r.rounds {
		kept := round.Pairings[:0]
		for _, p := range round.Pairings {
			if !p.Involves(id) {
				kept = append(kept, p)
			}
		}
		round.Pairings = kept
	}
	return nil
}

type fakeRoundRepo struct{ *memStore }

func (r fakeRoundRepo) NextNumber(_ context.Context, _ repositories.SQLExecutor, tournamentID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := 1
	for _, round := range r.roundsOf(tournamentID) {
		if round.Number >= next {
			next = round.Number + 1
		}
	}
	return next, nil
}

func (r fakeRoundRepo) Create(_ context.Context, _ repositories.SQLExecutor, round *models.Round, pairings []*models.Pairing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.roundsOf(round.TournamentID) {
		if existing.Number == round.Number {
			return repositories.ErrRoundNumberConflict
		}
	}
	round.ID = r.id()
	round.CreatedAt = time.Now()
	round.Pairings = make([]models.Pairing, 0, len(pairings))
	for _, p := range pairings {
		p.RoundID = round.ID
		p.TournamentID = round.TournamentID
		p.RoundNumber = round.Number
		p.CreatedAt = round.CreatedAt
		round.Pairings = append(round.Pairings, *p)
	}
	stored := copyRound(round)
	r.rounds[round.ID] = &stored
	return nil
}

func (r fakeRoundRepo) GetByNumber(_ context.Context, _ repositories.SQLExecutor, tournamentID, number int) (*models.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, round := range r.roundsOf(tournamentID) {
		if round.Number == number {
			out := copyRound(round)
			return &out, nil
		}
	}
	return nil, repositories.ErrRoundNotFound
}

func (r fakeRoundRepo) ListByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int) ([]models.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []models.Round
	for _, round := range r.roundsOf(tournamentID) {
		list = append(list, copyRound(round))
	}
	return list, nil
}

func (r fakeRoundRepo) Delete(_ context.Context, _ repositories.SQLExecutor, roundID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rounds[roundID]; !ok {
		return repositories.ErrRoundNotFound
	}
	delete(r.rounds, roundID)
	return nil
}

type fakePairingRepo struct{ *memStore }

// find must be called with mu held.
func (r fakePairingRepo) find(id string) (*models.Round, int) {
	for _, round := range r.rounds {
		for i := range round.Pairings {
			if round.Pairings[i].ID == id {
				return round, i
			}
		}
	}
	return nil, -1
}

func (r fakePairingRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, tournamentID int, id string) (*models.Pairing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	round, i := r.find(id)
	if round == nil || round.TournamentID != tournamentID {
		return nil, repositories.ErrPairingNotFound
	}
	out := round.Pairings[i]
	return &out, nil
}

func (r fakePairingRepo) ListByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int) ([]models.Pairing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []models.Pairing
	for _, round := range r.roundsOf(tournamentID) {
		list = append(list, round.Pairings...)
	}
	return list, nil
}

func (r fakePairingRepo) UpdateResult(_ context.Context, _ repositories.SQLExecutor, id string, result *models.PairingResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	round, i := r.find(id)
	if round == nil {
		return repositories.ErrPairingNotFound
	}
	if result == nil {
		round.Pairings[i].Result = nil
		return nil
	}
	value := *result
	round.Pairings[i].Result = &value
	return nil
}

func (r fakePairingRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	round, i := r.find(id)
	if round == nil {
		return repositories.ErrPairingNotFound
	}
	round.Pairings = append(round.Pairings[:i], round.Pairings[i+1:]...)
	return nil
}

type fakeUserRepo struct{ *memStore }

func (r fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repositories.ErrUserEmailConflict
		}
		if existing.Nickname == u.Nickname {
			return repositories.ErrUserNicknameConflict
		}
	}
	u.ID = r.id()
	u.CreatedAt = time.Now()
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

// fakeTransactor serializes callers per store; it does not roll back.
type fakeTransactor struct {
	mu    sync.Mutex
	calls int
}

func (t *fakeTransactor) WithinTournament(_ context.Context, _ int, fn func(exec repositories.SQLExecutor) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls++
	return fn(nil)
}

type recordingNotifier struct {
	mu      sync.Mutex
	changed []int
}

func (n *recordingNotifier) TournamentChanged(_ context.Context, tournamentID int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, tournamentID)
	return nil
}

func (n *recordingNotifier) events() []int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]int(nil), n.changed...)
}

type recordingArchiver struct {
	snapshots []storage.RoundSnapshot
	removed   []string
	err       error
}

func (a *recordingArchiver) ArchiveRound(_ context.Context, snapshot storage.RoundSnapshot) (*storage.UploadResult, error) {
	if a.err != nil {
		return nil, a.err
	}
	a.snapshots = append(a.snapshots, snapshot)
	key := storage.SnapshotKey(snapshot.TournamentID, snapshot.RoundNumber)
	return &storage.UploadResult{Key: key, Location: "memory://" + key}, nil
}

func (a *recordingArchiver) RemoveRound(_ context.Context, tournamentID, roundNumber int) error {
	a.removed = append(a.removed, storage.SnapshotKey(tournamentID, roundNumber))
	return nil
}

// fixture wires every service over one in-memory store.
type fixture struct {
	store       *memStore
	transactor  *fakeTransactor
	notifier    *recordingNotifier
	archiver    *recordingArchiver
	tournaments TournamentService
	competitors CompetitorService
	rounds      RoundService
}

func newFixture() *fixture {
	store := newMemStore()
	f := &fixture{
		store:      store,
		transactor: &fakeTransactor{},
		notifier:   &recordingNotifier{},
		archiver:   &recordingArchiver{},
	}
	f.tournaments = NewTournamentService(f.transactor, fakeTournamentRepo{store}, fakeCompetitorRepo{store}, fakeRoundRepo{store}, fakeUserRepo{store}, f.notifier, nil)
	f.competitors = NewCompetitorService(f.transactor, fakeTournamentRepo{store}, fakeCompetitorRepo{store}, fakePairingRepo{store}, f.notifier, nil)
	f.rounds = NewRoundService(f.transactor, fakeTournamentRepo{store}, fakeCompetitorRepo{store}, fakeRoundRepo{store}, fakePairingRepo{store}, nil, f.notifier, f.archiver, nil)
	return f
}

const organizerID = 100

func (f *fixture) tournament(maxRounds int) *models.Tournament {
	t := &models.Tournament{Name: fmt.Sprintf("Open %d", f.store.nextID+1), OrganizerID: organizerID, MaxRounds: maxRounds}
	if err := (fakeTournamentRepo{f.store}).Create(context.Background(), t); err != nil {
		panic(err)
	}
	return t
}

func (f *fixture) competitor(tournamentID int, name string, rating int) *models.Competitor {
	c := &models.Competitor{TournamentID: tournamentID, Name: name, Rating: rating, Active: true}
	if err := (fakeCompetitorRepo{f.store}).Create(context.Background(), c); err != nil {
		panic(err)
	}
	return c
}

func (f *fixture) score(id int) float64 {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.competitors[id].Score
}
