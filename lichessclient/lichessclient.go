// Package lichessclient is a supplemental, non-core driver.Driver
// implementation for a lichess-shaped bot API. It gives the driver
// interface a realistic caller but is outside the core engine's test
// surface; nothing in engine/search/driver imports this package.
package lichessclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tholman/chessbot/engine"
)

// Config is this client's on-disk configuration, loaded from YAML.
type Config struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
}

// LoadConfig reads a YAML config file from path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("lichessclient: decoding config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://lichess.org"
	}
	return cfg, nil
}

// Opponent describes the other player in a bot game.
type Opponent struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
}

// Game is a bot game state snapshot, trimmed to the fields this client
// actually consumes.
type Game struct {
	GameID   string   `json:"gameId"`
	FullID   string   `json:"fullId"`
	Color    string   `json:"color"`
	LastMove string   `json:"lastMove"`
	FEN      string   `json:"fen"`
	Opponent Opponent `json:"opponent"`
	Rated    bool     `json:"rated"`
	IsMyTurn bool     `json:"isMyTurn"`
}

// Client talks to a lichess-shaped bot API over HTTP. It implements
// driver.Driver so it can be handed to driver.Adaptor.PlayGame, but is
// deliberately not imported by any core package.
type Client struct {
	cfg        Config
	httpClient *http.Client

	gameID   string
	position *engine.Position
	color    engine.Color
}

// NewClient builds a Client for the given game, fetching its current
// state once to seed position/color.
func NewClient(cfg Config, gameID string) (*Client, error) {
	c := &Client{cfg: cfg, httpClient: http.DefaultClient, gameID: gameID}
	if err := c.refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) refresh() error {
	req, err := http.NewRequest(http.MethodGet, c.cfg.BaseURL+"/api/bot/game/"+c.gameID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var game Game
	if err := json.Unmarshal(body, &game); err != nil {
		return fmt.Errorf("lichessclient: decoding game state: %w", err)
	}

	pos, err := engine.ParseFEN(game.FEN)
	if err != nil {
		return fmt.Errorf("lichessclient: parsing game FEN: %w", err)
	}
	c.position = pos
	if game.Color == "black" {
		c.color = engine.Black
	} else {
		c.color = engine.White
	}
	return nil
}

func (c *Client) GetPosition() *engine.Position { return c.position }
func (c *Client) GetMyColor() engine.Color { return c.color }
func (c *Client) GameName() string { return c.gameID }

func (c *Client) SubmitMove(m engine.Move) bool {
	uci := m.FromSquare().String() + m.ToSquare().String()
	url := fmt.Sprintf("%s/api/bot/game/%s/move/%s", c.cfg.BaseURL, c.gameID, uci)
	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *Client) Resign() {
	url := fmt.Sprintf("%s/api/bot/game/%s/resign", c.cfg.BaseURL, c.gameID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	resp, err := c.httpClient.Do(req)
	if err == nil {
		resp.Body.Close()
	}
}

func (c *Client) OfferDraw() bool {
	url := fmt.Sprintf("%s/api/bot/game/%s/draw/yes", c.cfg.BaseURL, c.gameID)
	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
