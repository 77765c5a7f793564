// Package engine drives key generation, signing and verification.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/d2verb/pq-falcon-sigs/internal/falcon"
	"github.com/d2verb/pq-falcon-sigs/internal/input"
	"github.com/d2verb/pq-falcon-sigs/internal/keys"
	"github.com/d2verb/pq-falcon-sigs/internal/keystore"
	"github.com/d2verb/pq-falcon-sigs/internal/output"
	"github.com/d2verb/pq-falcon-sigs/internal/safeio"
)

// Engine runs one request against its collaborators.
type Engine struct {
	Store  *keystore.Store
	Input  *input.Source
	Output *output.Sink
	Scheme falcon.Scheme
	Logger *slog.Logger
}

// New creates an engine using the FN-DSA primitive.
func New(store *keystore.Store, in *input.Source, out *output.Sink, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		Store:  store,
		Input:  in,
		Output: out,
		Scheme: falcon.FNDSA{},
		Logger: logger,
	}
}

// Run executes req. The returned Result is non-nil even on failure and
// reports the terminal state.
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	res := &Result{Mode: req.Mode, Level: req.Level, State: StateIdle}

	if err := req.Validate(); err != nil {
		return e.fail(res, err)
	}
	e.transition(res, req.Mode.requested())

	var err error
	switch req.Mode {
	case ModeKeygen:
		err = e.keygen(ctx, req, res)
	case ModeSign:
		err = e.sign(ctx, req, res)
	case ModeVerify:
		err = e.verify(ctx, req, res)
	}
	if err != nil {
		return e.fail(res, err)
	}

	e.transition(res, StateCompleted)
	return res, nil
}

func (e *Engine) keygen(ctx context.Context, req Request, res *Result) error {
	policy := safeio.PolicyFor(req.Force)

	// Both guards are evaluated before a key is generated.
	if err := e.Store.CheckWritable(policy); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rawPK, rawSK, err := e.Scheme.GenerateKey(req.Level)
	if err != nil {
		return err
	}
	defer clear(rawSK)

	pk, err := keys.DecodePublic(rawPK, req.Level)
	if err != nil {
		return fmt.Errorf("generated key: %w", err)
	}
	sk, err := keys.DecodeSecret(rawSK, req.Level)
	if err != nil {
		return fmt.Errorf("generated key: %w", err)
	}
	defer sk.Wipe()

	publicExisted, err := safeio.Exists(e.Store.PublicPath())
	if err != nil {
		return err
	}
	if err := e.Store.WritePublic(pk, policy); err != nil {
		return err
	}
	if err := e.Store.WriteSecret(sk, policy); err != nil {
		// A fresh public key without its secret half is useless.
		if !publicExisted {
			if rmErr := e.Store.RemovePublic(); rmErr != nil {
				e.Logger.Warn("rollback public key failed", "path", e.Store.PublicPath(), "error", rmErr)
			}
		}
		return err
	}

	res.PublicKeyPath = e.Store.PublicPath()
	res.SecretKeyPath = e.Store.SecretPath()
	res.Fingerprint = pk.Fingerprint()
	res.PublicKeyBase64 = pk.Base64()
	e.Logger.Info("key pair generated", "level", req.Level.String(), "fingerprint", res.Fingerprint)
	return nil
}

func (e *Engine) sign(ctx context.Context, req Request, res *Result) error {
	msg, origin, err := e.Input.Resolve(req.InputPath, req.PositionalPath)
	if err != nil {
		return err
	}
	res.Origin = origin

	sk, err := e.Store.ReadSecret(req.Level)
	if err != nil {
		return err
	}
	defer sk.Wipe()
	if err := ctx.Err(); err != nil {
		return err
	}

	signed, err := e.Scheme.Sign(req.Level, msg, sk.Bytes())
	if err != nil {
		return err
	}
	if err := e.Output.Write(req.OutputPath, signed, safeio.PolicyFor(req.Force)); err != nil {
		return err
	}

	res.Bytes = len(signed)
	e.Logger.Info("message signed", "level", req.Level.String(), "input", string(origin), "bytes", len(msg))
	return nil
}

func (e *Engine) verify(ctx context.Context, req Request, res *Result) error {
	signed, origin, err := e.Input.Resolve(req.InputPath, req.PositionalPath)
	if err != nil {
		return err
	}
	res.Origin = origin

	pk, err := e.publicKey(req)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := e.Scheme.Open(req.Level, signed, pk.Bytes())
	if err != nil {
		if errors.Is(err, falcon.ErrVerificationFailed) {
			e.Logger.Warn("verification failed", "level", req.Level.String(), "fingerprint", pk.Fingerprint())
		}
		return err
	}
	if err := e.Output.Write(req.OutputPath, msg, safeio.PolicyFor(req.Force)); err != nil {
		return err
	}

	res.Bytes = len(msg)
	res.Fingerprint = pk.Fingerprint()
	e.Logger.Info("signature verified", "level", req.Level.String(), "fingerprint", res.Fingerprint)
	return nil
}

// publicKey prefers the inline base64 literal over the key store.
func (e *Engine) publicKey(req Request) (keys.PublicKey, error) {
	if req.PublicKeyBase64 != "" {
		pk, err := keys.DecodePublicBase64(req.PublicKeyBase64, req.Level)
		if err != nil {
			return keys.PublicKey{}, fmt.Errorf("inline public key: %w", err)
		}
		return pk, nil
	}
	return e.Store.ReadPublic(req.Level)
}

func (e *Engine) transition(res *Result, to State) {
	e.Logger.Debug("state transition", "mode", res.Mode.String(), "from", res.State.String(), "to", to.String())
	res.State = to
}

func (e *Engine) fail(res *Result, err error) (*Result, error) {
	e.transition(res, StateFailed)
	e.Logger.Error("operation failed", "mode", res.Mode.String(), "error", err)
	return res, err
}
