package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/sphere-sync/internal/adapter"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/tui"
	"github.com/MKhiriev/sphere-sync/internal/utils"
	"github.com/MKhiriev/sphere-sync/models"
)

const (
	CommandVersion = "version"
	CommandToken   = "token"
	CommandSync    = "sync"
)

// Options is the parsed command line of syncctl.
type Options struct {
	Server string

	// Token is sent as is. Without it a token is minted from SignKey.
	Token   string
	SignKey string
	Issuer  string
	UserID  string
	TTL     time.Duration

	Type       models.SyncType
	Scope      string
	AppVersion string
	SphereID   string
	StoneID    string

	// RequestFile holds a full sync envelope; flags override its sync header.
	RequestFile string
	JSON        bool
}

type App struct {
	opts   Options
	client adapter.SyncClient
	out    io.Writer
	logger *logger.Logger
}

func NewApp(opts Options, client adapter.SyncClient, out io.Writer, logger *logger.Logger) *App {
	return &App{
		opts:   opts,
		client: client,
		out:    out,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case CommandVersion:
		return a.version(ctx)
	case CommandToken:
		return a.token()
	case CommandSync:
		return a.sync(ctx)
	}

	return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
}

func (a *App) version(ctx context.Context) error {
	info, err := a.client.Version(ctx)
	if err != nil {
		return err
	}
	if a.opts.JSON {
		return json.NewEncoder(a.out).Encode(info)
	}

	_, err = fmt.Fprintln(a.out, tui.RenderVersion(a.opts.Server, info))
	return err
}

func (a *App) token() error {
	token, err := a.mintToken()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, token)
	return err
}

func (a *App) mintToken() (string, error) {
	if a.opts.UserID == "" {
		return "", ErrNoUser
	}
	if a.opts.SignKey == "" {
		return "", ErrNoToken
	}

	token, err := utils.GenerateJWTToken(a.opts.Issuer, a.opts.UserID, a.opts.TTL, a.opts.SignKey)
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}
	return token.SignedString, nil
}

func (a *App) sync(ctx context.Context) error {
	if a.opts.StoneID != "" && a.opts.SphereID == "" {
		return ErrStoneNeedsSphere
	}

	token := a.opts.Token
	if token == "" {
		minted, err := a.mintToken()
		if err != nil {
			return err
		}
		token = minted
	} else if sub, err := utils.TokenSubject(token); err == nil {
		a.logger.Debug().Str("user_id", sub).Msg("using supplied token")
	}
	a.client.SetToken(token)

	req, err := a.buildRequest()
	if err != nil {
		return err
	}

	var reply models.SyncReply
	switch {
	case a.opts.StoneID != "":
		reply, err = a.client.SyncStone(ctx, a.opts.SphereID, a.opts.StoneID, req)
	case a.opts.SphereID != "":
		reply, err = a.client.SyncSphere(ctx, a.opts.SphereID, req)
	default:
		reply, err = a.client.SyncUser(ctx, req)
	}
	if err != nil {
		return err
	}

	a.logger.Debug().Str("type", string(req.Sync.Type)).Int("spheres", len(reply.Spheres)).Msg("sync answered")

	if a.opts.JSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(reply)
	}

	_, err = fmt.Fprintln(a.out, tui.RenderReply(req.Sync.Type, reply))
	return err
}

// buildRequest loads the envelope from RequestFile, if any, and applies the
// sync header flags on top.
func (a *App) buildRequest() (models.SyncRequest, error) {
	var req models.SyncRequest
	if a.opts.RequestFile != "" {
		raw, err := os.ReadFile(a.opts.RequestFile)
		if err != nil {
			return models.SyncRequest{}, fmt.Errorf("read request file: %w", err)
		}
		if err = json.Unmarshal(raw, &req); err != nil {
			return models.SyncRequest{}, fmt.Errorf("decode request file: %w", err)
		}
	}
	if req.Sync == nil {
		req.Sync = &models.SyncMeta{}
	}

	if a.opts.Type != "" {
		req.Sync.Type = models.SyncType(strings.ToUpper(string(a.opts.Type)))
	}
	if req.Sync.Type == "" {
		req.Sync.Type = models.SyncTypeFull
	}
	if !req.Sync.Type.Valid() {
		return models.SyncRequest{}, fmt.Errorf("unknown sync type %q", req.Sync.Type)
	}

	if a.opts.Scope != "" {
		scope, err := parseScope(a.opts.Scope)
		if err != nil {
			return models.SyncRequest{}, err
		}
		req.Sync.Scope = scope
	}
	if a.opts.AppVersion != "" {
		req.Sync.AppVersion = a.opts.AppVersion
	}

	return req, nil
}

func parseScope(raw string) ([]models.Category, error) {
	parts := strings.Split(raw, ",")
	scope := make([]models.Category, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, ok := models.ParseCategory(part)
		if !ok {
			return nil, fmt.Errorf("unknown scope category %q", part)
		}
		scope = append(scope, c)
	}
	return scope, nil
}
