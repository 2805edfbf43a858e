package static

var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Выпуклая оболочка (QuickHull)</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 55%;
				padding: 10px;
				box-sizing: border-box;
				overflow-y: auto;
			}

			#right-container {
				width: 45%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow-y: auto;
				overflow-x: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			#stats td {
				padding: 2px 12px 2px 0;
			}

			.error {
				color: #ff6b6b;
			}

			input[type="number"],
			select,
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			label, h1 {
				color: #d3d3d3;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Параметры облака точек</h1>
                <form id="hull-form" method="POST">
                    <label for="points">Количество точек (n):</label>
                    <input type="number" id="points" name="points" value="200" min="4" max="100000"><br>
                    <label for="shape">Форма:</label>
                    <select id="shape" name="shape">
                        <option value="random">Случайные в кубе</option>
                        <option value="sphere">На сфере</option>
                        <option value="cube">Вершины куба</option>
                        <option value="grid">Решетка</option>
                    </select><br>
                    <label for="seed">Seed (0 - случайный):</label>
                    <input type="number" id="seed" name="seed" value="0"><br>
                    <label for="rotate">Повернуть:</label>
                    <input type="checkbox" id="rotate" name="rotate" value="true"><br>
                    <label for="debug">Подробные логи:</label>
                    <input type="checkbox" id="debug" name="debug" value="true"><br>
                    <input type="submit" value="Построить">
                </form>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('hull-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('Ошибка при отправке данных');
                    }
                    return response.text();
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Ошибка:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)
