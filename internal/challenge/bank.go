package challenge

import "github.com/reviewgym/reviewgym/internal/finding"

// bank holds the embedded challenges, two per difficulty level.
// Locations reference line numbers in the listing, counting from 1.
var bank = []Challenge{
	{
		ID:         "builtin-user-lookup",
		Title:      "User lookup endpoint",
		Language:   "go",
		Difficulty: 1,
		PromptText: `package api

import (
	"database/sql"
	"fmt"
	"net/http"
)

const adminToken = "sk-live-9f2b1c7a"

func userHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		query := "SELECT id, email FROM users WHERE name = '" + name + "'"
		rows, err := db.Query(query)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()
		fmt.Fprintf(w, "ok")
	}
}`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "injection",
				Severity:       finding.SeverityHigh,
				Location:       "users.go:14",
				Description:    "User-supplied name is concatenated into the SQL string; any quote breaks out of the literal.",
				InterestWeight: 4,
			},
			{
				ID:             "gt-2",
				Category:       "secrets-handling",
				Severity:       finding.SeverityHigh,
				Location:       "users.go:9",
				Description:    "A live API token is hardcoded in source.",
				InterestWeight: 3,
			},
			{
				ID:             "gt-3",
				Category:       "error-handling",
				Severity:       finding.SeverityLow,
				Location:       "users.go:17",
				Description:    "Raw database error text is returned to the client.",
				InterestWeight: 2,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "resource-leaks",
				Severity:       finding.SeverityLow,
				Location:       "users.go:20",
				Description:    "rows.Close is deferred after the error check; the rows are not leaked.",
				InterestWeight: 1,
			},
		},
	},
	{
		ID:         "builtin-account-routes",
		Title:      "Account balance and close routes",
		Language:   "python",
		Difficulty: 1,
		PromptText: `from flask import Flask, jsonify, request

app = Flask(__name__)

@app.route("/accounts/<int:account_id>/balance")
def balance(account_id):
    account = db.accounts.find_one({"id": account_id})
    if account is None:
        return jsonify({"error": "not found"}), 404
    return jsonify({"balance": account["balance"]})

@app.route("/accounts/<int:account_id>/close", methods=["POST"])
def close_account(account_id):
    account = db.accounts.find_one({"id": account_id})
    account["status"] = "closed"
    db.accounts.save(account)
    return jsonify({"ok": True})`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "access-control",
				Severity:       finding.SeverityCritical,
				Location:       "accounts.py:13",
				Description:    "Any caller can close any account; there is no ownership or authentication check.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-2",
				Category:       "access-control",
				Severity:       finding.SeverityHigh,
				Location:       "accounts.py:6",
				Description:    "Balances are readable for arbitrary account IDs without authorization.",
				InterestWeight: 4,
			},
			{
				ID:             "gt-3",
				Category:       "error-handling",
				Severity:       finding.SeverityLow,
				Location:       "accounts.py:15",
				Description:    "find_one result is used without the None check the balance route has; closing a missing account raises.",
				InterestWeight: 2,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "input-validation",
				Severity:       finding.SeverityLow,
				Location:       "accounts.py:5",
				Description:    "The <int:account_id> converter already rejects non-numeric IDs.",
				InterestWeight: 1,
			},
		},
	},
	{
		ID:         "builtin-reset-token",
		Title:      "Password reset tokens",
		Language:   "go",
		Difficulty: 2,
		PromptText: `package auth

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

func init() {
	rand.Seed(time.Now().Unix())
}

func NewResetToken(email string) string {
	raw := fmt.Sprintf("%s:%d", email, rand.Int63())
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func ValidateEmail(email string) bool {
	return strings.Contains(email, "@")
}`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "crypto-defaults",
				Severity:       finding.SeverityCritical,
				Location:       "token.go:17",
				Description:    "Reset tokens derive from math/rand seeded with the clock; an attacker who knows the minute can enumerate them.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-2",
				Category:       "crypto-defaults",
				Severity:       finding.SeverityHigh,
				Location:       "token.go:18",
				Description:    "MD5 is used to derive a security token.",
				InterestWeight: 3,
			},
			{
				ID:             "gt-3",
				Category:       "input-validation",
				Severity:       finding.SeverityMedium,
				Location:       "token.go:23",
				Description:    "Email validation accepts any string containing an @.",
				InterestWeight: 2,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "crypto-defaults",
				Severity:       finding.SeverityLow,
				Location:       "token.go:19",
				Description:    "Hex encoding of the digest is fine; the encoding is not the weakness here.",
				InterestWeight: 1,
			},
		},
	},
	{
		ID:         "builtin-config-loader",
		Title:      "Config loader",
		Language:   "go",
		Difficulty: 2,
		PromptText: `package config

import (
	"encoding/json"
	"os"
)

type Settings struct {
	ListenAddr string ` + "`json:\"listen_addr\"`" + `
	Workers    int    ` + "`json:\"workers\"`" + `
}

func Load(path string) *Settings {
	f, err := os.Open(path)
	if err != nil {
		return &Settings{}
	}
	var s Settings
	json.NewDecoder(f).Decode(&s)
	return &s
}`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "error-handling",
				Severity:       finding.SeverityHigh,
				Location:       "config.go:19",
				Description:    "The Decode error is ignored; callers get half-filled settings on malformed JSON.",
				InterestWeight: 4,
			},
			{
				ID:             "gt-2",
				Category:       "resource-leaks",
				Severity:       finding.SeverityMedium,
				Location:       "config.go:14",
				Description:    "The opened file is never closed.",
				InterestWeight: 3,
			},
			{
				ID:             "gt-3",
				Category:       "error-handling",
				Severity:       finding.SeverityMedium,
				Location:       "config.go:16",
				Description:    "Open failures are swallowed; a missing config file and an empty one are indistinguishable.",
				InterestWeight: 3,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "logic",
				Severity:       finding.SeverityLow,
				Location:       "config.go:20",
				Description:    "Returning a pointer to the local is fine in Go; it escapes to the heap.",
				InterestWeight: 1,
			},
		},
	},
	{
		ID:         "builtin-rate-limiter",
		Title:      "In-memory rate limiter",
		Language:   "go",
		Difficulty: 3,
		PromptText: `package ratelimit

import (
	"sync"
	"time"
)

type Limiter struct {
	mu     sync.Mutex
	counts map[string]int
	limit  int
}

func NewLimiter(limit int) *Limiter {
	l := &Limiter{counts: make(map[string]int), limit: limit}
	go l.reset()
	return l
}

func (l *Limiter) reset() {
	for range time.Tick(time.Minute) {
		l.counts = make(map[string]int)
	}
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	n := l.counts[key]
	if n >= l.limit {
		return false
	}
	l.counts[key] = n + 1
	l.mu.Unlock()
	return true
}`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "resource-leaks",
				Severity:       finding.SeverityHigh,
				Location:       "limiter.go:30",
				Description:    "The early return skips the Unlock; the limiter deadlocks once any key hits the limit.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-2",
				Category:       "concurrency",
				Severity:       finding.SeverityHigh,
				Location:       "limiter.go:22",
				Description:    "reset replaces the map without holding the mutex and races with Allow.",
				InterestWeight: 4,
			},
			{
				ID:             "gt-3",
				Category:       "resource-leaks",
				Severity:       finding.SeverityLow,
				Location:       "limiter.go:21",
				Description:    "time.Tick can never be stopped; the goroutine and ticker leak when the limiter is discarded.",
				InterestWeight: 2,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "concurrency",
				Severity:       finding.SeverityLow,
				Location:       "limiter.go:28",
				Description:    "This map read happens under the mutex taken on the line above; the read itself is fine.",
				InterestWeight: 1,
			},
		},
	},
	{
		ID:         "builtin-report-routes",
		Title:      "Report export and import routes",
		Language:   "javascript",
		Difficulty: 3,
		PromptText: `const express = require("express");
const { exec } = require("child_process");
const serialize = require("node-serialize");
const router = express.Router();

router.get("/reports/:name/export", (req, res) => {
  const name = req.params.name;
  exec(` + "`pdfgen --input reports/${name}.html`" + `, (err, stdout) => {
    if (err) {
      res.status(500).send("export failed");
      return;
    }
    res.type("application/pdf").send(stdout);
  });
});

router.post("/reports/import", (req, res) => {
  const report = serialize.unserialize(req.body.data);
  store.save(report);
  res.send("ok");
});

module.exports = router;`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "injection",
				Severity:       finding.SeverityCritical,
				Location:       "export.js:8",
				Description:    "A request path segment is interpolated into a shell command.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-2",
				Category:       "injection",
				Severity:       finding.SeverityCritical,
				Location:       "export.js:18",
				Description:    "unserialize on attacker-controlled data executes embedded functions.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-3",
				Category:       "dependency-risk",
				Severity:       finding.SeverityHigh,
				Location:       "export.js:3",
				Description:    "node-serialize has a known remote code execution flaw and is unmaintained.",
				InterestWeight: 4,
			},
			{
				ID:             "gt-4",
				Category:       "access-control",
				Severity:       finding.SeverityMedium,
				Location:       "export.js:6",
				Description:    "The export and import routes have no authentication.",
				InterestWeight: 3,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "error-handling",
				Severity:       finding.SeverityLow,
				Location:       "export.js:10",
				Description:    "The failure message is generic; nothing sensitive leaks here.",
				InterestWeight: 1,
			},
		},
	},
	{
		ID:         "builtin-total-cache",
		Title:      "Order total cache",
		Language:   "go",
		Difficulty: 4,
		PromptText: `package orders

import "sync"

type TotalCache struct {
	mu     sync.RWMutex
	totals map[string]float64
}

func NewTotalCache() *TotalCache {
	return &TotalCache{totals: make(map[string]float64)}
}

func (c *TotalCache) Get(orderID string, compute func() float64) float64 {
	c.mu.RLock()
	total, ok := c.totals[orderID]
	c.mu.RUnlock()
	if ok {
		return total
	}
	total = compute()
	c.mu.RLock()
	c.totals[orderID] = total
	c.mu.RUnlock()
	return total
}

func (c *TotalCache) Invalidate(orderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.totals, orderID)
}`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "concurrency",
				Severity:       finding.SeverityCritical,
				Location:       "cache.go:23",
				Description:    "The map is written under a read lock; concurrent writers corrupt it.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-2",
				Category:       "concurrency",
				Severity:       finding.SeverityMedium,
				Location:       "cache.go:21",
				Description:    "compute runs outside any lock; concurrent misses for the same order recompute and last write wins.",
				InterestWeight: 3,
			},
			{
				ID:             "gt-3",
				Category:       "logic",
				Severity:       finding.SeverityMedium,
				Location:       "cache.go:7",
				Description:    "Monetary totals held in float64 accumulate rounding error.",
				InterestWeight: 3,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "concurrency",
				Severity:       finding.SeverityLow,
				Location:       "cache.go:17",
				Description:    "Releasing the read lock before the miss path is a valid pattern, not a bug by itself.",
				InterestWeight: 1,
			},
		},
	},
	{
		ID:         "builtin-webhook-receiver",
		Title:      "Webhook receiver",
		Language:   "python",
		Difficulty: 4,
		PromptText: `import hashlib
import hmac
import json
import logging

SECRET = b"whsec_live_c81d4e2f"
log = logging.getLogger("webhooks")

def verify(signature, payload):
    digest = hmac.new(SECRET, payload, hashlib.sha256).hexdigest()
    return digest == signature

def handle(request):
    payload = request.body
    signature = request.headers.get("X-Signature", "")
    if not verify(signature, payload):
        log.warning("bad signature: payload=%s", payload)
        return {"status": 403}
    event = json.loads(payload)
    if event.get("type") == "refund.created":
        amount = event["data"]["amount"]
        process_refund(event["data"]["account"], amount)
    return {"status": 200}`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "secrets-handling",
				Severity:       finding.SeverityHigh,
				Location:       "webhook.py:6",
				Description:    "A live webhook secret is committed in source.",
				InterestWeight: 4,
			},
			{
				ID:             "gt-2",
				Category:       "crypto-defaults",
				Severity:       finding.SeverityMedium,
				Location:       "webhook.py:11",
				Description:    "The signature is compared with ==; the comparison leaks timing. compare_digest exists for this.",
				InterestWeight: 3,
			},
			{
				ID:             "gt-3",
				Category:       "secrets-handling",
				Severity:       finding.SeverityMedium,
				Location:       "webhook.py:17",
				Description:    "The full payload is logged on verification failure.",
				InterestWeight: 3,
			},
			{
				ID:             "gt-4",
				Category:       "input-validation",
				Severity:       finding.SeverityMedium,
				Location:       "webhook.py:21",
				Description:    "The refund amount is taken from the payload without bounds or type checks.",
				InterestWeight: 3,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "injection",
				Severity:       finding.SeverityLow,
				Location:       "webhook.py:19",
				Description:    "json.loads on the raw body is safe; JSON parsing is not an injection sink here.",
				InterestWeight: 1,
			},
		},
	},
	{
		ID:         "builtin-worker-pool",
		Title:      "Worker pool with retries",
		Language:   "go",
		Difficulty: 5,
		PromptText: `package pipeline

import (
	"context"
	"sync"
)

type Job struct {
	ID      string
	Attempt int
}

func Run(ctx context.Context, jobs []Job, workers int, process func(Job) error) error {
	queue := make(chan Job, len(jobs))
	for _, j := range jobs {
		queue <- j
	}
	var wg sync.WaitGroup
	var firstErr error
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				if err := process(j); err != nil {
					if j.Attempt < 3 {
						j.Attempt++
						queue <- j
					} else if firstErr == nil {
						firstErr = err
					}
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "concurrency",
				Severity:       finding.SeverityCritical,
				Location:       "pipeline.go:24",
				Description:    "queue is never closed, so every worker blocks in range and Wait never returns.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-2",
				Category:       "concurrency",
				Severity:       finding.SeverityHigh,
				Location:       "pipeline.go:28",
				Description:    "A consumer re-queues into a bounded channel; once retries fill the buffer every worker can block on send at once.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-3",
				Category:       "concurrency",
				Severity:       finding.SeverityHigh,
				Location:       "pipeline.go:30",
				Description:    "firstErr is written from multiple goroutines without synchronization.",
				InterestWeight: 4,
			},
			{
				ID:             "gt-4",
				Category:       "logic",
				Severity:       finding.SeverityMedium,
				Location:       "pipeline.go:13",
				Description:    "ctx is accepted but never consulted; cancellation never stops the pool.",
				InterestWeight: 3,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "concurrency",
				Severity:       finding.SeverityMedium,
				Location:       "pipeline.go:21",
				Description:    "wg.Add before the goroutine launch is the correct order, not a race.",
				InterestWeight: 1,
			},
		},
	},
	{
		ID:         "builtin-key-middleware",
		Title:      "API key middleware",
		Language:   "python",
		Difficulty: 5,
		PromptText: `import base64
import sqlite3
import time

DB = sqlite3.connect("keys.db", check_same_thread=False)

def rotate_key(account):
    new_key = base64.b64encode(f"{account}:{time.time()}".encode()).decode()
    DB.execute(f"UPDATE keys SET value = '{new_key}' WHERE account = '{account}'")
    DB.commit()
    return new_key

class KeyMiddleware:
    def __init__(self, get_response):
        self.get_response = get_response

    def __call__(self, request):
        key = request.headers.get("X-Api-Key", "")
        row = DB.execute(
            "SELECT account, is_admin FROM keys WHERE value = ?", (key,)
        ).fetchone()
        if row:
            request.account = row[0]
            request.is_admin = True
        return self.get_response(request)`,
		GroundTruth: []finding.Finding{
			{
				ID:             "gt-1",
				Category:       "crypto-defaults",
				Severity:       finding.SeverityCritical,
				Location:       "apikey.py:8",
				Description:    "API keys are base64 of the account name and a timestamp; fully predictable, no entropy.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-2",
				Category:       "injection",
				Severity:       finding.SeverityCritical,
				Location:       "apikey.py:9",
				Description:    "account is interpolated into the UPDATE statement with an f-string.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-3",
				Category:       "access-control",
				Severity:       finding.SeverityCritical,
				Location:       "apikey.py:24",
				Description:    "Every valid key gets is_admin True; the is_admin column is read but ignored.",
				InterestWeight: 5,
			},
			{
				ID:             "gt-4",
				Category:       "access-control",
				Severity:       finding.SeverityMedium,
				Location:       "apikey.py:25",
				Description:    "Requests with no matching key fall through to the handler with no account set.",
				InterestWeight: 3,
			},
			{
				ID:             "gt-5",
				Category:       "concurrency",
				Severity:       finding.SeverityMedium,
				Location:       "apikey.py:5",
				Description:    "One sqlite connection is shared across threads with check_same_thread disabled and no locking.",
				InterestWeight: 3,
			},
		},
		Traps: []finding.Finding{
			{
				ID:             "trap-1",
				Category:       "injection",
				Severity:       finding.SeverityLow,
				Location:       "apikey.py:20",
				Description:    "The SELECT is parameterized and safe; contrast with the UPDATE above.",
				InterestWeight: 1,
			},
		},
	},
}
