package txbuilder

import (
	"encoding/json"
	"fmt"
)

// ArgumentKind distinguishes the two reference kinds a call argument can
// carry: a confirmed ledger id (or pure value) registered in the input
// table, and a submission-local handle to a previous command's output.
// Objects produced inside a submission do not exist in the ledger's
// indexable state yet, so the two must never be conflated.
type ArgumentKind string

const (
	KindGasCoin ArgumentKind = "GasCoin"
	KindInput   ArgumentKind = "Input"
	KindResult  ArgumentKind = "Result"
)

// Argument references a value usable by a command.
type Argument struct {
	Kind  ArgumentKind `json:"kind"`
	Input int          `json:"input,omitempty"`
	Cmd   int          `json:"cmd,omitempty"`
	Index int          `json:"index,omitempty"`
}

// InputKind distinguishes object inputs from pure values.
type InputKind string

const (
	InputObject InputKind = "object"
	InputPure   InputKind = "pure"
)

// Input is one entry of the transaction's input table.
type Input struct {
	Kind     InputKind   `json:"kind"`
	ObjectID string      `json:"objectId,omitempty"`
	Value    interface{} `json:"value,omitempty"`
	Type     string      `json:"valueType,omitempty"`
}

// CommandKind enumerates the supported programmable commands.
type CommandKind string

const (
	CommandMoveCall        CommandKind = "MoveCall"
	CommandSplitCoins      CommandKind = "SplitCoins"
	CommandTransferObjects CommandKind = "TransferObjects"
)

// MoveCall invokes a function of an on-chain module.
type MoveCall struct {
	Target        string     `json:"target"`
	TypeArguments []string   `json:"typeArguments,omitempty"`
	Arguments     []Argument `json:"arguments"`
}

// SplitCoins splits amounts off a coin, producing one new coin per amount.
type SplitCoins struct {
	Coin    Argument   `json:"coin"`
	Amounts []Argument `json:"amounts"`
}

// TransferObjects transfers objects to an address.
type TransferObjects struct {
	Objects []Argument `json:"objects"`
	Address Argument   `json:"address"`
}

// Command is one step of a transaction; exactly one member is set,
// according to Kind.
type Command struct {
	Kind            CommandKind      `json:"kind"`
	MoveCall        *MoveCall        `json:"moveCall,omitempty"`
	SplitCoins      *SplitCoins      `json:"splitCoins,omitempty"`
	TransferObjects *TransferObjects `json:"transferObjects,omitempty"`
}

// Transaction is an ordered list of commands plus the input table and an
// explicit, statically chosen gas budget. The whole transaction is one
// atomic submission unit.
type Transaction struct {
	Sender    string    `json:"sender,omitempty"`
	Inputs    []Input   `json:"inputs"`
	Commands  []Command `json:"commands"`
	GasBudget uint64    `json:"gasBudget"`
}

// NewTransaction creates an empty transaction.
func NewTransaction() *Transaction {
	return &Transaction{}
}

// SetSender records the submitting address.
func (t *Transaction) SetSender(addr string) {
	t.Sender = addr
}

// SetGasBudget sets the resource budget for the whole submission.
func (t *Transaction) SetGasBudget(budget uint64) {
	t.GasBudget = budget
}

// Gas returns the gas coin argument.
func (t *Transaction) Gas() Argument {
	return Argument{Kind: KindGasCoin}
}

// Object registers a confirmed ledger object id as an input and returns an
// argument referencing it.
func (t *Transaction) Object(objectID string) Argument {
	return t.addInput(Input{Kind: InputObject, ObjectID: objectID})
}

// PureString registers a pure string input.
func (t *Transaction) PureString(v string) Argument {
	return t.addInput(Input{Kind: InputPure, Value: v, Type: "string"})
}

// PureU64 registers a pure u64 input. The value is carried as a decimal
// string on the wire, matching the node's u64 encoding.
func (t *Transaction) PureU64(v uint64) Argument {
	return t.addInput(Input{Kind: InputPure, Value: fmt.Sprintf("%d", v), Type: "u64"})
}

// PureAddress registers a pure address input.
func (t *Transaction) PureAddress(addr string) Argument {
	return t.addInput(Input{Kind: InputPure, Value: addr, Type: "address"})
}

// PureID registers a pure object-id input. Unlike Object, this passes the
// id by value; the referenced object is not part of the transaction's
// object set.
func (t *Transaction) PureID(objectID string) Argument {
	return t.addInput(Input{Kind: InputPure, Value: objectID, Type: "id"})
}

func (t *Transaction) addInput(input Input) Argument {
	t.Inputs = append(t.Inputs, input)
	return Argument{Kind: KindInput, Input: len(t.Inputs) - 1}
}

// Result is a submission-local handle to one command's outputs. It is only
// meaningful inside the transaction that produced it.
type Result struct {
	cmd int
}

// Arg returns the command's first (or only) output as an argument.
func (r Result) Arg() Argument {
	return Argument{Kind: KindResult, Cmd: r.cmd}
}

// Nth returns the command's i-th output as an argument.
func (r Result) Nth(i int) Argument {
	return Argument{Kind: KindResult, Cmd: r.cmd, Index: i}
}

// MoveCallCmd appends a move call and returns a handle to its outputs.
func (t *Transaction) MoveCallCmd(target string, typeArgs []string, args ...Argument) Result {
	t.Commands = append(t.Commands, Command{
		Kind: CommandMoveCall,
		MoveCall: &MoveCall{
			Target:        target,
			TypeArguments: typeArgs,
			Arguments:     args,
		},
	})
	return Result{cmd: len(t.Commands) - 1}
}

// SplitCoinsCmd appends a coin split and returns a handle to the produced
// coins.
func (t *Transaction) SplitCoinsCmd(coin Argument, amounts ...Argument) Result {
	t.Commands = append(t.Commands, Command{
		Kind: CommandSplitCoins,
		SplitCoins: &SplitCoins{
			Coin:    coin,
			Amounts: amounts,
		},
	})
	return Result{cmd: len(t.Commands) - 1}
}

// TransferObjectsCmd appends a transfer of objects to an address.
func (t *Transaction) TransferObjectsCmd(objects []Argument, address Argument) Result {
	t.Commands = append(t.Commands, Command{
		Kind: CommandTransferObjects,
		TransferObjects: &TransferObjects{
			Objects: objects,
			Address: address,
		},
	})
	return Result{cmd: len(t.Commands) - 1}
}

// MarshalJSON gives the wire form handed to the signing gateway.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	type alias Transaction
	a := (*alias)(t)
	if a.Inputs == nil {
		a.Inputs = []Input{}
	}
	if a.Commands == nil {
		a.Commands = []Command{}
	}
	return json.Marshal(a)
}
