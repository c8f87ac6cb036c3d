package main

import "github.com/shenjiangqiu/shell/cmd"

func main() {
	cmd.Execute()
}
