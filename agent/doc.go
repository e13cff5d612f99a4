// Package agent contains the concrete agents and the textual command
// protocol they answer.
//
//  1. Protocol parsing (ParseCommand, ParsePayload)
//  2. Base dispatch (BaseAgent): tool invocation or default acknowledgement
//  3. Variants: WorkerAgent (delegation target) and SupervisorAgent
//     (forwards "delegate" requests to its worker)
//
// Grammar recognized by BaseAgent.Run:
//
//	tool:<name> <payload>   invoke tool <name>; <payload> is a JSON object
//	                        of string keys to primitive values
//	anything else           {"from": <agent>, "response": "Received message: <message>"}
//
// Every Run is independent: agents keep no per-call state and never consult
// their MemoryStore while dispatching.
package agent
