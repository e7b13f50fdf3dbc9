// Package bankbook implements a single-user account book: named accounts
// holding a balance and an append-only transaction log, persisted as one
// human-readable JSON document. It is designed to be local-first and
// auditable; the durable file is the single source of truth and is rewritten
// in full after every successful mutation.
//
// The core functionalities include:
//   - Account Management: Creating accounts with stable ACCnnn numbers and
//     applying deposits and withdrawals under strict validation (positive
//     amounts, never a negative balance).
//   - Transaction History: Every accepted mutation appends an immutable
//     record carrying the amount, a wall-clock timestamp and the balance
//     immediately after the operation.
//   - Data Persistence: Encoding and decoding the whole store to a durable
//     JSON document, written atomically so a failed save never corrupts the
//     previous state.
//
// This package serves as the foundational logic for the `bnk` command-line
// tool. All amounts are decimal values; binary floating point is never used
// for money.
package bankbook
