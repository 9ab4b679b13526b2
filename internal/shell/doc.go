// Package shell interprets terminal command lines against a vfs.Store.
//
// An Interpreter owns one Session (user, working directory, history and
// command counter) and a fixed dispatch table. Every handler returns a
// Result; failures are values, never panics or errors, so front ends only
// have to render what they get back.
//
//	store := vfs.New(root, logger)
//	in, err := shell.New(store, profiles, shell.WithUser("dixit"))
//	res := in.Execute("cat README.md")
//	fmt.Println(shell.RenderText(res))
package shell
