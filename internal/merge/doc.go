// Package merge writes the merged form of two compared .editorconfig files.
//
// Conflicting keys are settled by a [Resolver]. [Prefer] always picks one
// side without asking; [Prompter] asks on the terminal, one key at a time.
// [Write] emits each section as its header, the shared keys, a "# conflict"
// block with the resolved keys, then one block per source for the keys only
// that source defines.
package merge
