package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/knightboard/game/board"
	"github.com/wricardo/knightboard/game/service"
)

var (
	ErrBoardNotFound = service.ErrBoardNotFound
	ErrInvalidBoard  = errors.New("invalid board")
)

// DefaultBoardID is loaded as the default board when the catalog has it.
const DefaultBoardID = "classic"

// boardExtensions lists the file types the catalog reads, in lookup order.
var boardExtensions = []string{".yaml", ".yml", ".txt"}

// Manager handles board loading and caching
type Manager struct {
	boardDir     string
	defaultBoard *service.Board
	boards       map[string]*service.Board
	mu           sync.RWMutex
}

// NewManager creates a new board catalog over boardDir. An empty boardDir
// gives a catalog that only knows boards loaded with LoadFile.
func NewManager(boardDir string) (*Manager, error) {
	if boardDir != "" {
		if _, err := os.Stat(boardDir); os.IsNotExist(err) {
			return nil, fmt.Errorf("board directory does not exist: %s", boardDir)
		}
	}

	m := &Manager{
		boardDir: boardDir,
		boards:   make(map[string]*service.Board),
	}

	if err := m.loadDefaultBoard(); err != nil {
		return nil, fmt.Errorf("failed to load default board: %w", err)
	}

	return m, nil
}

// LoadBoard loads a board by id, the file name without its extension
func (m *Manager) LoadBoard(id string) (*service.Board, error) {
	m.mu.RLock()
	// Check cache first
	if b, exists := m.boards[id]; exists {
		m.mu.RUnlock()
		return b, nil
	}
	m.mu.RUnlock()

	if m.boardDir == "" {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}

	path, err := m.findBoardFile(id)
	if err != nil {
		return nil, err
	}

	// Parse outside the lock, boards can be large
	b, err := loadBoardFile(id, path)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if cached, exists := m.boards[id]; exists {
		return cached, nil
	}
	m.boards[id] = b
	return b, nil
}

// LoadFile loads a board file from anywhere on disk and caches it under its
// path, so later lookups by that path hit the cache. size applies to plain
// text boards; zero infers it.
func (m *Manager) LoadFile(path string, size int) (*service.Board, error) {
	m.mu.RLock()
	if b, exists := m.boards[path]; exists {
		m.mu.RUnlock()
		return b, nil
	}
	m.mu.RUnlock()

	var (
		b   *service.Board
		err error
	)
	if isYAML(path) {
		b, err = loadBoardFile(path, path)
	} else {
		b, err = loadTextBoard(path, path, size)
	}
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.boards[path] = b
	return b, nil
}

// ListBoards returns information about all valid boards in the directory
func (m *Manager) ListBoards() ([]*service.BoardInfo, error) {
	if m.boardDir == "" {
		return m.listCached(), nil
	}

	entries, err := os.ReadDir(m.boardDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read board directory: %w", err)
	}

	var infos []*service.BoardInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !hasBoardExtension(entry.Name()) {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if seen[id] {
			continue
		}
		seen[id] = true

		// Try to load the board to get details
		b, err := m.LoadBoard(id)
		if err != nil {
			// Skip invalid boards
			continue
		}
		infos = append(infos, service.Describe(b, entry.Name()))
	}

	return infos, nil
}

func (m *Manager) listCached() []*service.BoardInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.boards))
	for id := range m.boards {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	infos := make([]*service.BoardInfo, 0, len(ids))
	for _, id := range ids {
		b := m.boards[id]
		infos = append(infos, service.Describe(b, filepath.Base(b.Source)))
	}
	return infos
}

// GetDefault returns the default board
func (m *Manager) GetDefault() *service.Board {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultBoard
}

// SetDefault sets the default board by id
func (m *Manager) SetDefault(id string) error {
	b, err := m.LoadBoard(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultBoard = b
	return nil
}

// SetDefaultBoard makes an already loaded board the default
func (m *Manager) SetDefaultBoard(b *service.Board) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultBoard = b
}

// RefreshCache drops every cached board and reloads the default from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	// Clear cache
	m.boards = make(map[string]*service.Board)
	m.mu.Unlock()

	// Reload default board
	return m.loadDefaultBoard()
}

// loadDefaultBoard loads the default board
func (m *Manager) loadDefaultBoard() error {
	b, err := m.pickDefault()
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultBoard = b
	return nil
}

func (m *Manager) pickDefault() (*service.Board, error) {
	if m.boardDir == "" {
		return builtinBoard()
	}

	// Try to load classic as default
	b, err := m.LoadBoard(DefaultBoardID)
	if err == nil {
		return b, nil
	}

	// Try to load the first available board
	infos, listErr := m.ListBoards()
	if listErr != nil || len(infos) == 0 {
		return builtinBoard()
	}
	if b, err := m.LoadBoard(infos[0].BoardID); err == nil {
		return b, nil
	}
	return builtinBoard()
}

func (m *Manager) findBoardFile(id string) (string, error) {
	if hasBoardExtension(id) {
		path := filepath.Join(m.boardDir, id)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		return "", fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}

	for _, ext := range boardExtensions {
		path := filepath.Join(m.boardDir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrBoardNotFound, id)
}

func loadBoardFile(id, path string) (*service.Board, error) {
	if !isYAML(path) {
		return loadTextBoard(id, path, 0)
	}

	cfg, err := board.LoadBoardConfig(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBoard, path, err)
	}
	g, err := cfg.Grid()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBoard, path, err)
	}
	return &service.Board{ID: id, Source: path, Config: cfg, Grid: g, LoadedAt: time.Now()}, nil
}

func loadTextBoard(id, path string, size int) (*service.Board, error) {
	g, err := board.LoadFile(path, size)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &service.Board{
		ID:       id,
		Source:   path,
		Config:   board.ConfigFromGrid(name, "plain text board", g),
		Grid:     g,
		LoadedAt: time.Now(),
	}, nil
}

// builtinBoard is the open 8x8 board used when no catalog board is available
func builtinBoard() (*service.Board, error) {
	g, err := board.NewGrid(8, nil)
	if err != nil {
		return nil, err
	}
	return &service.Board{
		ID:       "default",
		Source:   "builtin",
		Config:   board.ConfigFromGrid("default", "Open 8x8 board", g),
		Grid:     g,
		LoadedAt: time.Now(),
	}, nil
}

func hasBoardExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range boardExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
