// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The bonsai-go Authors

// Package bonsai is a client SDK for the Bonsai remote proving service.
//
// A caller uploads a program image and an input blob, creates a proving
// session, polls its status, and downloads the resulting receipt once the
// session succeeds. A completed session can additionally be wrapped into a
// SNARK by a second server-side job. All scheduling happens server-side;
// the SDK is a typed REST surface with no retries, no background polling,
// and no local persistence.
//
// The central type is [Client], constructed with [New] or [NewFromEnv].
// [Session] and [Snark] are opaque server-issued handles that route every
// query through the client that created them.
//
// Errors are classified by the sentinel values in errors.go and can be
// branched on with [errors.Is]:
//
//	receipt, err := client.ReceiptDownload(ctx, session)
//	if errors.Is(err, bonsai.ErrNotFound) {
//		// proof not ready yet, keep polling
//	}
package bonsai
